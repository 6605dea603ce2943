package usecases_port

import (
	"context"
	"io"
	"listing-service/internal/core/domain"
)

type ExportListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters, w io.Writer) (int, error)
	ContentType() string
}
