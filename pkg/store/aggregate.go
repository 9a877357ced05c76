// Package store implements the read-only aggregate queries shared by the
// record repositories: count, column sums and grouped counts.
package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var identRE = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// GroupCount is one partition of a grouped count.
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:group_count"`
}

func checkColumn(col string) error {
	if !identRE.MatchString(col) {
		return fmt.Errorf("invalid column name %q", col)
	}
	return nil
}

// Count returns the number of rows of model.
func Count(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Sum adds up each column over every row of model in a single query.
// An empty table sums to 0 for every column.
func Sum(ctx context.Context, db *gorm.DB, model any, columns ...string) (map[string]float64, error) {
	if len(columns) == 0 {
		return map[string]float64{}, nil
	}
	exprs := make([]string, len(columns))
	for i, col := range columns {
		if err := checkColumn(col); err != nil {
			return nil, err
		}
		exprs[i] = fmt.Sprintf("COALESCE(SUM(%s), 0)", col)
	}

	vals := make([]float64, len(columns))
	dest := make([]any, len(columns))
	for i := range vals {
		dest[i] = &vals[i]
	}
	row := db.WithContext(ctx).Model(model).Select(strings.Join(exprs, ", ")).Row()
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(columns))
	for i, col := range columns {
		out[col] = vals[i]
	}
	return out, nil
}

// GroupCountBy partitions the rows of model by column and counts each
// partition. Row order is whatever the store returns.
func GroupCountBy(ctx context.Context, db *gorm.DB, model any, column string) ([]GroupCount, error) {
	if err := checkColumn(column); err != nil {
		return nil, err
	}
	var out []GroupCount
	err := db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("%s AS group_key, COUNT(*) AS group_count", column)).
		Group(column).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
