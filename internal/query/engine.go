package query

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// Definition parameterizes the engine for one resource: which columns the
// free-text search spans and which sort fields are accepted. Sort fields not
// present in SortColumns fall back to DefaultSort rather than reaching the
// database, so a client-supplied field name never enters an ORDER BY clause
// verbatim.
type Definition struct {
	SearchColumns []string
	SortColumns   map[string]string
	DefaultSort   string
}

// Meta carries the count metadata of one page.
type Meta struct {
	Count int
	Total int64
	Page  int
	Pages int
}

// List runs the filtered, sorted, paginated query plus the unpaged count for
// model T, resolving each record's creator reference. Both queries share one
// predicate so count and page never drift.
func List[T any](db *gorm.DB, def Definition, p Params) ([]T, Meta, error) {
	tx := db.Model(new(T))

	if p.Search != "" && len(def.SearchColumns) > 0 {
		pattern := "%" + EscapeLike(strings.ToLower(p.Search)) + "%"
		conds := make([]string, len(def.SearchColumns))
		args := make([]interface{}, len(def.SearchColumns))
		for i, col := range def.SearchColumns {
			conds[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
			args[i] = pattern
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, Meta{}, err
	}

	column, ok := def.SortColumns[p.SortBy]
	if !ok {
		column = def.DefaultSort
	}
	direction := "DESC"
	if p.Order == "asc" {
		direction = "ASC"
	}

	records := make([]T, 0, p.Limit)
	err := tx.Preload("CreatedBy").
		Order(column + " " + direction).
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&records).Error
	if err != nil {
		return nil, Meta{}, err
	}

	return records, Meta{
		Count: len(records),
		Total: total,
		Page:  p.Page,
		Pages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}, nil
}

// EscapeLike neutralizes LIKE wildcards in user-supplied search text.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
