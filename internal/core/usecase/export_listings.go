package usecase

import (
	"context"
	"fmt"
	"io"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ExportListingsUseCase выгружает все совпадения с фильтрами в заданном формате.
type ExportListingsUseCase struct {
	query   port.ListingQueryPort
	encoder port.ListingEncoderPort
}

func NewExportListingsUseCase(query port.ListingQueryPort, encoder port.ListingEncoderPort) *ExportListingsUseCase {
	return &ExportListingsUseCase{query: query, encoder: encoder}
}

// Execute пишет выгрузку в w и возвращает число записанных объявлений.
func (uc *ExportListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, w io.Writer) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ExportListings",
		"filters":  filters,
	})

	set, err := uc.query.FindAll(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return 0, err
	}

	if err := uc.encoder.Encode(w, set.Rows); err != nil {
		ucLogger.Error("Failed to encode export", err, nil)
		return 0, fmt.Errorf("failed to encode %d listings: %w", len(set.Rows), err)
	}

	ucLogger.Info("Export finished", port.Fields{"count": len(set.Rows)})
	return len(set.Rows), nil
}

// ContentType возвращает MIME-тип выгрузки.
func (uc *ExportListingsUseCase) ContentType() string {
	return uc.encoder.ContentType()
}
