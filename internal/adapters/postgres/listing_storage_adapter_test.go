package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertQuery(t *testing.T) {
	q := upsertListingQuery

	assert.Contains(t, q, "ON CONFLICT (listingkey) DO UPDATE SET")
	assert.Contains(t, q, "raw_payload = EXCLUDED.raw_payload")
	assert.Contains(t, q, "listprice = EXCLUDED.listprice")
	assert.NotContains(t, q, "listingkey = EXCLUDED.listingkey")
	assert.Contains(t, q, "GREATEST(clock_timestamp(), listings.updated_at + interval '1 microsecond')")
	assert.Contains(t, q, "RETURNING (xmax = 0) AS created, updated_at")
	assert.Equal(t, len(listingColumns), strings.Count(q, "$"))
}

func TestNewListingStorageAdapter_NilPool(t *testing.T) {
	_, err := NewListingStorageAdapter(nil)
	assert.Error(t, err)
}

func TestUpsert_InsertThenUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	adapter, err := NewListingStorageAdapter(mock)
	require.NoError(t, err)

	first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WillReturnRows(pgxmock.NewRows([]string{"created", "updated_at"}).AddRow(true, first))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WillReturnRows(pgxmock.NewRows([]string{"created", "updated_at"}).AddRow(false, second))

	price := 200000.0
	listing := &domain.Listing{ListingKey: "K1", ListPrice: &price, RawPayload: []byte(`{}`)}

	outcome, err := adapter.Upsert(context.Background(), listing)
	require.NoError(t, err)
	assert.True(t, outcome.Created)

	price = 250000.0
	outcome2, err := adapter.Upsert(context.Background(), listing)
	require.NoError(t, err)
	assert.False(t, outcome2.Created)
	assert.True(t, outcome2.UpdatedAt.After(outcome.UpdatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_BindsValuesInColumnOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	adapter, _ := NewListingStorageAdapter(mock)
	listing := testListing("K7")

	args := make([]interface{}, 0, len(listingColumns))
	for _, v := range listingValues(&listing) {
		args = append(args, v)
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"created", "updated_at"}).AddRow(true, time.Now()))

	_, err = adapter.Upsert(context.Background(), &listing)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_WriteFailureIsReturned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	adapter, _ := NewListingStorageAdapter(mock)
	mock.ExpectQuery("INSERT INTO listings").WillReturnError(errors.New("connection reset"))

	outcome, err := adapter.Upsert(context.Background(), &domain.Listing{ListingKey: "K1"})
	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.Contains(t, err.Error(), "K1")
}

func TestUpsert_RequiresKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	adapter, _ := NewListingStorageAdapter(mock)
	_, err = adapter.Upsert(context.Background(), &domain.Listing{})
	assert.ErrorIs(t, err, domain.ErrMissingListingKey)
}
