package tablestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS portal_tables (
		table_name   VARCHAR(64) NOT NULL PRIMARY KEY,
		columns_json JSON        NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS portal_rows (
		table_name VARCHAR(64) NOT NULL,
		seq        INT         NOT NULL,
		cells_json JSON        NOT NULL,
		PRIMARY KEY (table_name, seq)
	)`,
}

// MySQLStore keeps every table in two generic tables: the column order in
// portal_tables and the rows as JSON objects in portal_rows.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(ctx context.Context, db *sql.DB) (*MySQLStore, error) {
	for _, stmt := range mysqlSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to prepare mysql schema: %w", err)
		}
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Load(ctx context.Context, name string) (*Table, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	t := NewTable()
	err := withTx(ctx, s.db, true, func(ctx context.Context, tx sqlTx) error {
		var colsJSON []byte
		err := tx.QueryRowContext(ctx, `SELECT columns_json FROM portal_tables WHERE table_name = ?`, name).Scan(&colsJSON)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(colsJSON, &t.Columns); err != nil {
				return fmt.Errorf("corrupt column list: %w", err)
			}
		}

		rows, err := tx.QueryContext(ctx, `SELECT cells_json FROM portal_rows WHERE table_name = ? ORDER BY seq`, name)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var cellsJSON []byte
			if err := rows.Scan(&cellsJSON); err != nil {
				return err
			}
			row := Row{}
			if err := json.Unmarshal(cellsJSON, &row); err != nil {
				return fmt.Errorf("corrupt row: %w", err)
			}
			for _, col := range t.Columns {
				if _, ok := row[col]; !ok {
					row[col] = ""
				}
			}
			t.Append(row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}
	Normalize(t)
	return t, nil
}

func (s *MySQLStore) Save(ctx context.Context, name string, t *Table) error {
	return s.SaveAll(ctx, Change{Name: name, Table: t})
}

func (s *MySQLStore) SaveAll(ctx context.Context, changes ...Change) error {
	if err := checkChanges(changes); err != nil {
		return err
	}
	err := withTx(ctx, s.db, false, func(ctx context.Context, tx sqlTx) error {
		for _, ch := range changes {
			if err := replaceRows(ctx, tx, ch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit tables: %w", err)
	}
	return nil
}

func replaceRows(ctx context.Context, tx sqlTx, ch Change) error {
	t := ch.Table
	if t == nil {
		t = NewTable()
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM portal_rows WHERE table_name = ?`, ch.Name); err != nil {
		return fmt.Errorf("failed to clear %s: %w", ch.Name, err)
	}
	for i, r := range t.Rows {
		cells := make(map[string]string, len(t.Columns))
		for _, col := range t.Columns {
			cells[col] = r[col]
		}
		buf, err := json.Marshal(cells)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO portal_rows (table_name, seq, cells_json) VALUES (?, ?, ?)`, ch.Name, i, buf); err != nil {
			return fmt.Errorf("failed to insert row into %s: %w", ch.Name, err)
		}
	}
	cols, err := json.Marshal(t.Columns)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO portal_tables (table_name, columns_json) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE columns_json = VALUES(columns_json)`, ch.Name, cols)
	if err != nil {
		return fmt.Errorf("failed to write columns of %s: %w", ch.Name, err)
	}
	return nil
}

func (s *MySQLStore) Close(context.Context) error {
	return s.db.Close()
}
