package rest

import (
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/normalizer"
)

// parseListingFilters собирает фильтры из query-параметров.
// Пустые и нераспознанные значения игнорируются.
func parseListingFilters(query url.Values) domain.ListingFilters {
	filters := domain.ListingFilters{
		City:         parseString(query, "city"),
		PriceMin:     parseFloat(query, "priceMin"),
		PriceMax:     parseFloat(query, "priceMax"),
		BedsMin:      parseInt(query, "bedsMin"),
		BedsMax:      parseInt(query, "bedsMax"),
		BathsMin:     parseInt(query, "bathsMin"),
		BathsMax:     parseInt(query, "bathsMax"),
		LotSizeMin:   parseFloat(query, "lotSizeMin"),
		LotSizeMax:   parseFloat(query, "lotSizeMax"),
		LotSizeUnit:  domain.LotSizeAcres,
		PropertyType: parseString(query, "propertyType"),
		YearBuiltMin: parseInt(query, "yearBuiltMin"),
		YearBuiltMax: parseInt(query, "yearBuiltMax"),
	}

	if strings.EqualFold(parseString(query, "lotSizeUnit"), string(domain.LotSizeSquareFeet)) {
		filters.LotSizeUnit = domain.LotSizeSquareFeet
	}
	// Флаг действует только при явном true
	filters.WaterfrontOnly = parseBool(query, "waterfrontOnly")

	return filters
}

// parsePageRequest разбирает page/pageSize. Дробные значения округляются вниз.
func parsePageRequest(query url.Values, maxPageSize int) domain.PageRequest {
	page, pageSize := 0, 0
	if v := parseInt(query, "page"); v != nil && *v <= int64(maxInt) {
		page = int(*v)
	}
	if v := parseInt(query, "pageSize"); v != nil && *v <= int64(maxInt) {
		pageSize = int(*v)
	}
	return domain.NewPageRequest(page, pageSize, maxPageSize)
}

const maxInt = int(^uint(0) >> 1)

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

func parseFloat(query url.Values, key string) *float64 {
	v := parseString(query, key)
	if v == "" {
		return nil
	}
	return normalizer.ToDecimal(v)
}

func parseInt(query url.Values, key string) *int64 {
	v := parseString(query, key)
	if v == "" {
		return nil
	}
	return normalizer.ToInteger(v)
}

func parseBool(query url.Values, key string) bool {
	b, err := strconv.ParseBool(parseString(query, key))
	return err == nil && b
}
