package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

// Порядок результата фиксирован, чтобы пагинация была детерминированной
const listingOrderClause = "ORDER BY listingkey ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

// addCondition добавляет условие и его значение одновременно,
// поэтому номер плейсхолдера всегда совпадает с позицией в args.
func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int64, max *int64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build возвращает WHERE (или пустую строку) и значения параметров
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyListingFilters разбирает фильтры и строит условие поиска
func applyListingFilters(filters domain.ListingFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Город - поиск подстроки без учета регистра
	if city := strings.TrimSpace(filters.City); city != "" {
		qb.addCondition(`%s ILIKE $%d ESCAPE '\'`, "city", "%"+likeEscaper.Replace(city)+"%")
	}

	qb.AddFloatFilter("listprice", filters.PriceMin, filters.PriceMax)
	qb.AddIntFilter("bedroomstotal", filters.BedsMin, filters.BedsMax)
	qb.AddIntFilter("bathroomstotalinteger", filters.BathsMin, filters.BathsMax)

	switch filters.LotSizeUnit {
	case domain.LotSizeSquareFeet:
		qb.AddFloatFilter("lotsizesquarefeet", filters.LotSizeMin, filters.LotSizeMax)
	default:
		qb.AddFloatFilter("lotsizearea", filters.LotSizeMin, filters.LotSizeMax)
	}

	// Значение false не сужает выборку
	if filters.WaterfrontOnly {
		qb.addCondition("%s = $%d", "waterfrontyn", true)
	}

	if propertyType := strings.TrimSpace(filters.PropertyType); propertyType != "" {
		qb.addCondition("%s = $%d", "propertytype", propertyType)
	}

	qb.AddIntFilter("yearbuilt", filters.YearBuiltMin, filters.YearBuiltMax)

	return qb.build()
}
