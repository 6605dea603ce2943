package normalizer

import (
	"encoding/json"
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagnosticFor(diags []domain.Diagnostic, column string) *domain.Diagnostic {
	for i := range diags {
		if diags[i].Column == column {
			return &diags[i]
		}
	}
	return nil
}

func TestNormalize_MalformedValuesBecomeNullOrTruncated(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, diags, err := n.Normalize(domain.RawRecord{
		"ListingKey":     "K1",
		"BedroomsTotal":  "abc",
		"NST_AgentOwner": strings.Repeat("X", 60),
	})
	require.NoError(t, err)

	assert.Equal(t, "K1", listing.ListingKey)
	assert.Nil(t, listing.BedroomsTotal)
	require.NotNil(t, listing.NSTAgentOwner)
	assert.Equal(t, strings.Repeat("X", 50), *listing.NSTAgentOwner)

	beds := diagnosticFor(diags, "bedroomstotal")
	require.NotNil(t, beds)
	assert.Equal(t, domain.DiagnosticCoercedToNull, beds.Kind)

	owner := diagnosticFor(diags, "nst_agentowner")
	require.NotNil(t, owner)
	assert.Equal(t, domain.DiagnosticTruncated, owner.Kind)
}

func TestNormalize_MissingListingKey(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	for _, raw := range []domain.RawRecord{
		{},
		{"ListingKey": "   "},
		{"ListingKey": map[string]interface{}{"id": 1}},
	} {
		listing, _, err := n.Normalize(raw)
		assert.ErrorIs(t, err, domain.ErrMissingListingKey)
		assert.Nil(t, listing)
	}
}

func TestNormalize_NilRecordIsInvalid(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	assert.Nil(t, listing)
}

func TestNormalize_ListingIDIsTrimmed(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(domain.RawRecord{"ListingKey": "K1", "ListingId": " 123 "})
	require.NoError(t, err)
	require.NotNil(t, listing.ListingID)
	assert.Equal(t, "123", *listing.ListingID)

	listing, _, err = n.Normalize(domain.RawRecord{"ListingKey": "K2", "ListingId": "   "})
	require.NoError(t, err)
	assert.Nil(t, listing.ListingID)
}

func TestNormalize_FallbackChain(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(domain.RawRecord{
		"listingkey": "K2",
		"City":       "",
		"raw_data":   `{"City": "Savage", "ListPrice": 350000, "PostalCode": "55378"}`,
		"raw_payload": map[string]interface{}{
			"City":       "Ignored",
			"YearBuilt":  json.Number("1999"),
			"PostalCode": "00000",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "K2", listing.ListingKey)
	require.NotNil(t, listing.City)
	assert.Equal(t, "Savage", *listing.City)
	require.NotNil(t, listing.ListPrice)
	assert.Equal(t, 350000.0, *listing.ListPrice)
	require.NotNil(t, listing.PostalCode)
	assert.Equal(t, "55378", *listing.PostalCode)
	require.NotNil(t, listing.YearBuilt)
	assert.Equal(t, int64(1999), *listing.YearBuilt)
}

func TestNormalize_TextLimitsComeFromConfiguration(t *testing.T) {
	n := NewNormalizer(TextLimits{Code: 2, Short: 0, Medium: 255})

	listing, diags, err := n.Normalize(domain.RawRecord{
		"ListingKey":      "K3",
		"StateOrProvince": "MN-US",
		"NST_AgentOwner":  strings.Repeat("Y", 80),
	})
	require.NoError(t, err)

	assert.Equal(t, "MN", *listing.StateOrProvince)
	assert.Len(t, *listing.NSTAgentOwner, 80)
	assert.Len(t, diags, 1)
}

func TestNormalize_RawPayloadIsVerbatim(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())
	raw := domain.RawRecord{
		"ListingKey":   "K4",
		"BedroomsTotal": "abc",
		"Unknown":      []interface{}{"kept"},
	}

	listing, _, err := n.Normalize(raw)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(listing.RawPayload, &decoded))
	assert.Equal(t, "abc", decoded["BedroomsTotal"])
	assert.Equal(t, []interface{}{"kept"}, decoded["Unknown"])
}

func TestNormalize_DerivedColumns(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(domain.RawRecord{
		"ListingKey": "K5",
		"Latitude":   44.7794,
		"Longitude":  -93.3363,
		"Media": []interface{}{
			map[string]interface{}{"MediaURL": "https://cdn/1.jpg"},
			map[string]interface{}{"MediaURL": ""},
			"garbage",
			map[string]interface{}{"MediaURL": "https://cdn/2.jpg"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, listing.PhotoURLs)
	require.NotNil(t, listing.Geohash)
	assert.Len(t, *listing.Geohash, geohashPrecision)
}

func TestNormalize_InvalidCoordinatesSkipGeohash(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(domain.RawRecord{
		"ListingKey": "K6",
		"Latitude":   "north",
		"Longitude":  500,
	})
	require.NoError(t, err)
	assert.Nil(t, listing.Geohash)
	assert.Nil(t, listing.Latitude)
}

func TestNormalize_NumericListingKey(t *testing.T) {
	n := NewNormalizer(DefaultTextLimits())

	listing, _, err := n.Normalize(domain.RawRecord{"ListingKey": json.Number("123456")})
	require.NoError(t, err)
	assert.Equal(t, "123456", listing.ListingKey)
}
