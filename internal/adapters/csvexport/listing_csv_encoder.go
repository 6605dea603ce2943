package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"listing-service/internal/core/domain"
)

// exportColumn - колонка выгрузки: заголовок и функция получения значения
type exportColumn struct {
	header string
	value  func(l *domain.Listing) string
}

var exportColumns = []exportColumn{
	{"ListingKey", func(l *domain.Listing) string { return l.ListingKey }},
	{"ListingId", func(l *domain.Listing) string { return str(l.ListingID) }},
	{"StandardStatus", func(l *domain.Listing) string { return str(l.StandardStatus) }},
	{"PropertyType", func(l *domain.Listing) string { return str(l.PropertyType) }},
	{"ListPrice", func(l *domain.Listing) string { return decimal(l.ListPrice) }},
	{"City", func(l *domain.Listing) string { return str(l.City) }},
	{"StateOrProvince", func(l *domain.Listing) string { return str(l.StateOrProvince) }},
	{"PostalCode", func(l *domain.Listing) string { return str(l.PostalCode) }},
	{"BedroomsTotal", func(l *domain.Listing) string { return integer(l.BedroomsTotal) }},
	{"BathroomsTotalInteger", func(l *domain.Listing) string { return integer(l.BathroomsTotalInteger) }},
	{"LivingArea", func(l *domain.Listing) string { return decimal(l.LivingArea) }},
	{"LotSizeArea", func(l *domain.Listing) string { return decimal(l.LotSizeArea) }},
	{"LotSizeSquareFeet", func(l *domain.Listing) string { return decimal(l.LotSizeSquareFeet) }},
	{"YearBuilt", func(l *domain.Listing) string { return integer(l.YearBuilt) }},
	{"WaterfrontYN", func(l *domain.Listing) string { return boolean(l.WaterfrontYN) }},
	{"Latitude", func(l *domain.Listing) string { return decimal(l.Latitude) }},
	{"Longitude", func(l *domain.Listing) string { return decimal(l.Longitude) }},
	{"Geohash", func(l *domain.Listing) string { return str(l.Geohash) }},
	{"ModificationTimestamp", func(l *domain.Listing) string { return timestamp(l.ModificationTimestamp) }},
	{"updated_at", func(l *domain.Listing) string { return l.UpdatedAt.UTC().Format(time.RFC3339Nano) }},
}

// ListingCSVEncoder пишет выборку объявлений в CSV: строка заголовка и по строке на объявление.
// Отсутствующие значения выводятся пустыми ячейками.
type ListingCSVEncoder struct{}

func NewListingCSVEncoder() *ListingCSVEncoder {
	return &ListingCSVEncoder{}
}

func (e *ListingCSVEncoder) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (e *ListingCSVEncoder) Encode(w io.Writer, listings []domain.Listing) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col.header
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	row := make([]string, len(exportColumns))
	for i := range listings {
		for j, col := range exportColumns {
			row[j] = col.value(&listings[i])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row %s: %w", listings[i].ListingKey, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func decimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func integer(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func boolean(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func timestamp(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339Nano)
}
