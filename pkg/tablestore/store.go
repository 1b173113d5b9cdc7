package tablestore

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrDuplicateChange = errors.New("table listed twice in one commit")
)

// Change is one table replacement inside a multi-table commit.
type Change struct {
	Name  string
	Table *Table
}

// Store loads and saves whole tables. Save replaces the backing data completely.
// SaveAll makes every change visible together or none of them.
type Store interface {
	Load(ctx context.Context, name string) (*Table, error)
	Save(ctx context.Context, name string, t *Table) error
	SaveAll(ctx context.Context, changes ...Change) error
	Close(ctx context.Context) error
}

func checkName(name string) error {
	if !Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return nil
}

func checkChanges(changes []Change) error {
	seen := make(map[string]bool, len(changes))
	for _, ch := range changes {
		if err := checkName(ch.Name); err != nil {
			return err
		}
		if seen[ch.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateChange, ch.Name)
		}
		seen[ch.Name] = true
	}
	return nil
}
