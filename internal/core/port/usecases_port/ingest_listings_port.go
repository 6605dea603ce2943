package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type IngestListingsUseCase interface {
	Execute(ctx context.Context, records []domain.RawRecord) (*domain.IngestSummary, error)
}
