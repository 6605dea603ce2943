package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ListingStoragePort - запись нормализованных объявлений.
type ListingStoragePort interface {
	Upsert(ctx context.Context, listing *domain.Listing) (*domain.UpsertOutcome, error)
}

// ListingQueryPort - чтение объявлений с фильтрами и по идентификатору.
type ListingQueryPort interface {
	FindPage(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error)
	FindAll(ctx context.Context, filters domain.ListingFilters) (*domain.ListingSet, error)
	GetByIdentifier(ctx context.Context, id string) (*domain.Listing, error)
}
