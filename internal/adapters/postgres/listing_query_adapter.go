package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
)

var selectListingColumns = strings.Join(selectColumns, ", ")

// Счетчик и страница должны видеть один и тот же снимок данных
var readSnapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// ListingQueryAdapter реализует ListingQueryPort для PostgreSQL.
type ListingQueryAdapter struct {
	pool DBPool
}

func NewListingQueryAdapter(pool DBPool) (*ListingQueryAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("database pool cannot be nil")
	}
	return &ListingQueryAdapter{
		pool: pool,
	}, nil
}

// FindPage возвращает одну страницу объявлений и общее число совпадений.
func (a *ListingQueryAdapter) FindPage(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingQueryAdapter",
		"method":    "FindPage",
		"page":      page.Page,
		"page_size": page.PageSize,
	})

	whereClause, args := applyListingFilters(filters)

	tx, err := a.pool.BeginTx(ctx, readSnapshotTxOptions)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrQueryFailed, err)
	}
	defer tx.Rollback(ctx)

	totalCount, err := countListings(ctx, tx, whereClause, args)
	if err != nil {
		repoLogger.Error("Failed to count listings with filters", err, port.Fields{"where": whereClause})
		return nil, err
	}

	result := &domain.ListingPage{
		Rows:       []domain.Listing{},
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}

	// Если ничего не найдено или страница за пределами выборки, второй запрос не нужен
	if totalCount == 0 || int64(page.Offset()) >= totalCount {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrQueryFailed, err)
		}
		return result, nil
	}

	pageArgs := append(append([]interface{}{}, args...), page.PageSize, page.Offset())
	dataQuery := fmt.Sprintf("SELECT %s FROM %s %s %s LIMIT $%d OFFSET $%d",
		selectListingColumns, listingsTable, whereClause, listingOrderClause, len(args)+1, len(args)+2,
	)

	rows, err := tx.Query(ctx, dataQuery, pageArgs...)
	if err != nil {
		repoLogger.Error("Failed to find listings with filters", err, port.Fields{"where": whereClause})
		return nil, fmt.Errorf("%w: failed to find listings: %v", domain.ErrQueryFailed, err)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Listing])
	if err != nil {
		repoLogger.Error("Failed to scan listings", err, nil)
		return nil, fmt.Errorf("%w: failed to scan listings: %v", domain.ErrQueryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrQueryFailed, err)
	}

	result.Rows = listings
	repoLogger.Info("Successfully found listings for page", port.Fields{"count": len(listings), "total_count": totalCount})
	return result, nil
}

// FindAll возвращает все совпадения без пагинации. Ограничения на размер
// выборки нет, вызывающая сторона отвечает за разумность фильтров.
func (a *ListingQueryAdapter) FindAll(ctx context.Context, filters domain.ListingFilters) (*domain.ListingSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingQueryAdapter",
		"method":    "FindAll",
	})

	whereClause, args := applyListingFilters(filters)

	tx, err := a.pool.BeginTx(ctx, readSnapshotTxOptions)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrQueryFailed, err)
	}
	defer tx.Rollback(ctx)

	totalCount, err := countListings(ctx, tx, whereClause, args)
	if err != nil {
		repoLogger.Error("Failed to count listings with filters", err, port.Fields{"where": whereClause})
		return nil, err
	}

	dataQuery := fmt.Sprintf("SELECT %s FROM %s %s %s", selectListingColumns, listingsTable, whereClause, listingOrderClause)
	rows, err := tx.Query(ctx, dataQuery, args...)
	if err != nil {
		repoLogger.Error("Failed to find listings with filters", err, port.Fields{"where": whereClause})
		return nil, fmt.Errorf("%w: failed to find listings: %v", domain.ErrQueryFailed, err)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Listing])
	if err != nil {
		repoLogger.Error("Failed to scan listings", err, nil)
		return nil, fmt.Errorf("%w: failed to scan listings: %v", domain.ErrQueryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrQueryFailed, err)
	}

	repoLogger.Info("Successfully found all listings", port.Fields{"count": len(listings)})
	return &domain.ListingSet{Rows: listings, TotalCount: totalCount}, nil
}

// GetByIdentifier ищет объявление по ListingKey или ListingId.
// Совпадение по ListingKey имеет приоритет.
func (a *ListingQueryAdapter) GetByIdentifier(ctx context.Context, id string) (*domain.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrListingNotFound
	}

	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingQueryAdapter",
		"method":     "GetByIdentifier",
		"identifier": id,
	})

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE listingkey = $1 OR listingid = $1
		ORDER BY (listingkey = $1) DESC, listingkey ASC
		LIMIT 1`, selectListingColumns, listingsTable,
	)

	rows, err := a.pool.Query(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to query listing by identifier", err, nil)
		return nil, fmt.Errorf("%w: failed to get listing: %v", domain.ErrQueryFailed, err)
	}

	listing, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Listing])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Listing not found", nil)
			return nil, domain.ErrListingNotFound
		}
		repoLogger.Error("Failed to scan listing", err, nil)
		return nil, fmt.Errorf("%w: failed to scan listing: %v", domain.ErrQueryFailed, err)
	}

	return listing, nil
}

func countListings(ctx context.Context, tx pgx.Tx, whereClause string, args []interface{}) (int64, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", listingsTable, whereClause)
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return 0, fmt.Errorf("%w: failed to count listings: %v", domain.ErrQueryFailed, err)
	}
	return totalCount, nil
}
