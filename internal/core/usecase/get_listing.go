package usecase

import (
	"context"
	"errors"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetListingUseCase struct {
	query port.ListingQueryPort
}

func NewGetListingUseCase(query port.ListingQueryPort) *GetListingUseCase {
	return &GetListingUseCase{query: query}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, id string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListing",
		"identifier": id,
	})

	listing, err := uc.query.GetByIdentifier(ctx, id)
	if err != nil {
		// Отсутствие объявления - штатный исход, а не сбой
		if errors.Is(err, domain.ErrListingNotFound) {
			ucLogger.Info("Listing not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	return listing, nil
}
