package domain

import "math"

// LotSizeUnit определяет, по какой колонке фильтруется площадь участка.
type LotSizeUnit string

const (
	LotSizeAcres      LotSizeUnit = "acres"
	LotSizeSquareFeet LotSizeUnit = "sqft"
)

// ListingFilters - распознанные опции поиска. Nil-указатель или пустая строка
// означают, что фильтр не задан.
type ListingFilters struct {
	City string

	PriceMin *float64
	PriceMax *float64

	BedsMin  *int64
	BedsMax  *int64
	BathsMin *int64
	BathsMax *int64

	LotSizeMin  *float64
	LotSizeMax  *float64
	LotSizeUnit LotSizeUnit

	WaterfrontOnly bool

	PropertyType string
	YearBuiltMin *int64
	YearBuiltMax *int64
}

const (
	DefaultPage     = 1
	DefaultPageSize = 100
	// DefaultMaxPageSize используется, если лимит не задан в конфигурации
	DefaultMaxPageSize = 1000
)

// PageRequest - уже нормализованные параметры страницы (оба значения >= 1).
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest приводит сырые значения к допустимым: неположительные
// заменяются значениями по умолчанию, размер страницы ограничивается сверху.
func NewPageRequest(page, pageSize, maxPageSize int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset возвращает число пропускаемых строк. При переполнении возвращается
// math.MaxInt: такая страница заведомо за пределами любой выборки.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// ListingPage - одна страница результатов поиска.
type ListingPage struct {
	Rows       []Listing
	TotalCount int64
	Page       int
	PageSize   int
}

// ListingSet - результат поиска без пагинации.
type ListingSet struct {
	Rows       []Listing
	TotalCount int64
}
