package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type FindListingsUseCase struct {
	query port.ListingQueryPort
}

func NewFindListingsUseCase(query port.ListingQueryPort) *FindListingsUseCase {
	return &FindListingsUseCase{query: query}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "FindListings",
		"filters":   filters,
		"page":      page.Page,
		"page_size": page.PageSize,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.query.FindPage(ctx, filters, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Rows),
	})

	return result, nil
}

// ExecuteAll возвращает все совпадения без пагинации (выгрузка, отладка).
func (uc *FindListingsUseCase) ExecuteAll(ctx context.Context, filters domain.ListingFilters) (*domain.ListingSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindAllListings",
		"filters":  filters,
	})

	result, err := uc.query.FindAll(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": result.TotalCount})
	return result, nil
}
