package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type FindListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error)
	ExecuteAll(ctx context.Context, filters domain.ListingFilters) (*domain.ListingSet, error)
}
