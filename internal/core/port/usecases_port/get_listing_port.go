package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetListingUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Listing, error)
}
