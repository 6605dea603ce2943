package postgres

import (
	"context"
	"fmt"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// upsertListingQuery собирается один раз: набор колонок фиксирован.
var upsertListingQuery = buildUpsertQuery()

func buildUpsertQuery() string {
	placeholders := make([]string, len(listingColumns))
	updates := make([]string, 0, len(listingColumns))
	for i, col := range listingColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col == "listingkey" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	// updated_at всегда строго растет, даже если часы сервера совпали
	// с предыдущей записью
	updates = append(updates, fmt.Sprintf(
		"updated_at = GREATEST(clock_timestamp(), %s.updated_at + interval '1 microsecond')", listingsTable,
	))

	return fmt.Sprintf(`
		INSERT INTO %s (%s, updated_at)
		VALUES (%s, clock_timestamp())
		ON CONFLICT (listingkey) DO UPDATE SET
			%s
		RETURNING (xmax = 0) AS created, updated_at`,
		listingsTable,
		strings.Join(listingColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ",\n\t\t\t"),
	)
}

// ListingStorageAdapter реализует ListingStoragePort для PostgreSQL.
type ListingStorageAdapter struct {
	pool DBPool
}

// NewListingStorageAdapter создает новый экземпляр адаптера.
func NewListingStorageAdapter(pool DBPool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("database pool cannot be nil")
	}
	return &ListingStorageAdapter{
		pool: pool,
	}, nil
}

// Upsert атомарно вставляет запись или перезаписывает все колонки
// существующей строки с тем же listingkey.
func (a *ListingStorageAdapter) Upsert(ctx context.Context, listing *domain.Listing) (*domain.UpsertOutcome, error) {
	if listing == nil || listing.ListingKey == "" {
		return nil, domain.ErrMissingListingKey
	}

	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "ListingStorageAdapter",
		"method":      "Upsert",
		"listing_key": listing.ListingKey,
	})

	var outcome domain.UpsertOutcome
	err := a.pool.QueryRow(ctx, upsertListingQuery, listingValues(listing)...).Scan(&outcome.Created, &outcome.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to upsert listing", err, nil)
		return nil, fmt.Errorf("failed to upsert listing %s: %w", listing.ListingKey, err)
	}

	repoLogger.Debug("Listing upserted", port.Fields{"created": outcome.Created})
	return &outcome, nil
}
