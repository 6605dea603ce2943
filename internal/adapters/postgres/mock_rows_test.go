package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
)

func testListing(key string) domain.Listing {
	price := 350000.0
	city := "Savage"
	return domain.Listing{
		ListingKey: key,
		ListPrice:  &price,
		City:       &city,
		Heating:    []string{"Forced Air"},
		RawPayload: json.RawMessage(fmt.Sprintf(`{"ListingKey":%q}`, key)),
		UpdatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// listingRows строит набор строк в том же порядке колонок, что и выборка
func listingRows(listings ...domain.Listing) *pgxmock.Rows {
	rows := pgxmock.NewRows(selectColumns)
	for i := range listings {
		values := append(listingValues(&listings[i]), listings[i].UpdatedAt)
		rows.AddRow(values...)
	}
	return rows
}
