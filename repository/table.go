package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"Employee-Attendance-Portal/pkg/tablestore"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateEmployee = errors.New("employee code already exists")
	ErrInvalidRecord     = errors.New("invalid record")
	ErrPostNotFound      = errors.New("post not found")
	ErrHolidayNotFound   = errors.New("holiday not found")
)

// loadRows decodes every row of the table. Rows that do not decode are skipped
// here and preserved on write by stageRows.
func loadRows[T any](ctx context.Context, store tablestore.Store, name string, decode func(tablestore.Row) (T, bool)) ([]T, error) {
	t, err := store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	out := make([]T, 0, t.Len())
	for _, r := range t.Rows {
		if v, ok := decode(r); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// stageRows builds the full table for items. Stored rows that do not decode are
// carried over unchanged, and validate only runs on items that differ from a
// stored row.
func stageRows[T any](ctx context.Context, store tablestore.Store, name string, columns []string, items []T,
	decode func(tablestore.Row) (T, bool), encode func(T) tablestore.Row, validate func(T) error) (tablestore.Change, error) {
	current, err := store.Load(ctx, name)
	if err != nil {
		return tablestore.Change{}, fmt.Errorf("failed to load %s: %w", name, err)
	}
	stored := make(map[string]bool, current.Len())
	var undecoded []tablestore.Row
	for _, r := range current.Rows {
		if v, ok := decode(r); ok {
			stored[rowKey(columns, encode(v))] = true
		} else {
			undecoded = append(undecoded, r)
		}
	}

	t := tablestore.NewTable(columns...)
	for _, it := range items {
		row := encode(it)
		if validate != nil && !stored[rowKey(columns, row)] {
			if err := validate(it); err != nil {
				return tablestore.Change{}, err
			}
		}
		t.Rows = append(t.Rows, row)
	}
	for _, r := range undecoded {
		t.Append(r)
	}
	return tablestore.Change{Name: name, Table: t}, nil
}

func rowKey(columns []string, r tablestore.Row) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = r[col]
	}
	return strings.Join(parts, "\x1f")
}

func cell(r tablestore.Row, col string) string {
	return strings.TrimSpace(r[col])
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
