package datatable

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Paginate runs the three-query DataTables pattern for entity T against db:
// an unfiltered count, a filtered count and the sorted page slice sharing
// the same predicate. The db handle is expected to already be scoped to the
// caller's tenant schema.
func Paginate[T any](ctx context.Context, db *gorm.DB, desc Descriptor, req Request) (*Result[T], error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}
	req = req.normalized()
	if req.SortColumn < 0 || req.SortColumn >= len(desc) {
		return nil, fmt.Errorf("%w: sort column %d out of range for %d columns",
			ErrInvalidQueryParameter, req.SortColumn, len(desc))
	}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	dialect := db.Dialector.Name()
	filter := func(tx *gorm.DB) *gorm.DB {
		return applySearch(tx, dialect, desc, req.Search)
	}

	var filtered int64
	if err := filter(db.WithContext(ctx).Model(new(T))).Count(&filtered).Error; err != nil {
		return nil, err
	}

	sortCol := desc[req.SortColumn]
	var rows []T
	err := filter(db.WithContext(ctx).Model(new(T))).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: sortCol.Name},
			Desc:   req.SortDir == Desc,
		}).
		Offset(req.Offset).
		Limit(req.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Draw:            req.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            rows,
	}, nil
}

// applySearch adds the disjunction over every allow-listed column. Column
// names were validated against identifierPattern, so building the
// expression by concatenation cannot smuggle request input into the SQL.
func applySearch(tx *gorm.DB, dialect string, desc Descriptor, term string) *gorm.DB {
	folded := Fold(strings.TrimSpace(term))
	if folded == "" {
		return tx
	}

	pattern := "%" + folded + "%"
	var exprs []string
	args := make([]interface{}, 0, len(desc))
	for _, col := range desc {
		exprs = append(exprs, searchExpr(dialect, col))
		args = append(args, pattern)
	}
	return tx.Where(strings.Join(exprs, " OR "), args...)
}

// searchExpr renders the match expression for one column. PostgreSQL folds
// stored values with unaccent (the extension is installed by the default
// schema migration); other dialects fold case only, the term itself having
// been folded in Go.
func searchExpr(dialect string, col Column) string {
	if col.Kind == Numeric {
		return "CAST(" + col.Name + " AS TEXT) LIKE ?"
	}
	if dialect == "postgres" {
		return "LOWER(UNACCENT(CAST(" + col.Name + " AS TEXT))) LIKE ?"
	}
	return "LOWER(CAST(" + col.Name + " AS TEXT)) LIKE ?"
}
