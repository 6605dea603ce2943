package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_HeaderAndRows(t *testing.T) {
	price := 450000.5
	beds := int64(3)
	waterfront := true
	city := "Naples, FL"

	listings := []domain.Listing{
		{ListingKey: "K1", ListPrice: &price, BedroomsTotal: &beds, WaterfrontYN: &waterfront, City: &city,
			UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{ListingKey: "K2"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewListingCSVEncoder().Encode(&buf, listings))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "ListingKey", header[0])
	assert.Len(t, header, len(exportColumns))

	first := toMap(header, records[1])
	assert.Equal(t, "K1", first["ListingKey"])
	assert.Equal(t, "450000.5", first["ListPrice"])
	assert.Equal(t, "3", first["BedroomsTotal"])
	assert.Equal(t, "true", first["WaterfrontYN"])
	assert.Equal(t, "Naples, FL", first["City"])
	assert.Equal(t, "2024-05-01T12:00:00Z", first["updated_at"])

	second := toMap(header, records[2])
	assert.Equal(t, "K2", second["ListingKey"])
	assert.Empty(t, second["ListPrice"])
	assert.Empty(t, second["WaterfrontYN"])
}

func TestEncode_EmptySetWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewListingCSVEncoder().Encode(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "text/csv; charset=utf-8", NewListingCSVEncoder().ContentType())
}

func toMap(header, row []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		m[h] = row[i]
	}
	return m
}
