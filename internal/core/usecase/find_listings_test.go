package usecase

import (
	"bytes"
	"context"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindListings_PassesPageThrough(t *testing.T) {
	query := &fakeQuery{page: &domain.ListingPage{TotalCount: 25, Page: 2, PageSize: 10}}
	uc := NewFindListingsUseCase(query)

	result, err := uc.Execute(context.Background(), domain.ListingFilters{}, domain.NewPageRequest(2, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.TotalCount)
	assert.Equal(t, domain.PageRequest{Page: 2, PageSize: 10}, query.lastReq)
}

func TestFindListings_PropagatesQueryFailure(t *testing.T) {
	uc := NewFindListingsUseCase(&fakeQuery{err: domain.ErrQueryFailed})

	_, err := uc.Execute(context.Background(), domain.ListingFilters{}, domain.NewPageRequest(1, 10, 0))
	assert.ErrorIs(t, err, domain.ErrQueryFailed)

	_, err = uc.ExecuteAll(context.Background(), domain.ListingFilters{})
	assert.ErrorIs(t, err, domain.ErrQueryFailed)
}

func TestGetListing(t *testing.T) {
	uc := NewGetListingUseCase(&fakeQuery{byID: map[string]domain.Listing{"K1": {ListingKey: "K1"}}})

	listing, err := uc.Execute(context.Background(), " K1 ")
	require.NoError(t, err)
	assert.Equal(t, "K1", listing.ListingKey)

	_, err = uc.Execute(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestExportListings(t *testing.T) {
	query := &fakeQuery{set: &domain.ListingSet{
		Rows:       []domain.Listing{{ListingKey: "A"}, {ListingKey: "B"}},
		TotalCount: 2,
	}}
	uc := NewExportListingsUseCase(query, keysEncoder{})

	var buf bytes.Buffer
	n, err := uc.Execute(context.Background(), domain.ListingFilters{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "A\nB\n", buf.String())
	assert.Equal(t, "text/plain", uc.ContentType())
}
