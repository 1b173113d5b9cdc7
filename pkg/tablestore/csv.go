package tablestore

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const journalName = ".commit.journal"

// CSVStore keeps one <name>.csv file per table under a directory.
type CSVStore struct {
	dir string
}

type journal struct {
	Renames []journalEntry `json:"renames"`
}

type journalEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewCSVStore opens dir, creating it when needed, and finishes any commit
// interrupted by a crash before returning.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &CSVStore{dir: dir}
	if err := s.recover(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CSVStore) Dir() string {
	return s.dir
}

func (s *CSVStore) path(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

func (s *CSVStore) Load(ctx context.Context, name string) (*Table, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("failed to open table %s: %w", name, err)
	}
	defer f.Close()

	t, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	Normalize(t)
	return t, nil
}

func readCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return NewTable(), nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := NewTable(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (s *CSVStore) Save(ctx context.Context, name string, t *Table) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := s.writeTemp(name, t)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace table %s: %w", name, err)
	}
	return nil
}

// SaveAll stages every table in a temp file, records the pending renames in a
// journal, then applies them. A crash after the journal is durable is rolled
// forward by NewCSVStore; a crash before it leaves the old files untouched.
func (s *CSVStore) SaveAll(ctx context.Context, changes ...Change) error {
	if err := checkChanges(changes); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var j journal
	cleanup := func() {
		for _, e := range j.Renames {
			os.Remove(e.From)
		}
	}
	for _, ch := range changes {
		tmp, err := s.writeTemp(ch.Name, ch.Table)
		if err != nil {
			cleanup()
			return err
		}
		j.Renames = append(j.Renames, journalEntry{From: tmp, To: s.path(ch.Name)})
	}

	if err := s.writeJournal(j); err != nil {
		cleanup()
		return err
	}
	return s.applyJournal(j)
}

func (s *CSVStore) Close(context.Context) error {
	return nil
}

func (s *CSVStore) writeTemp(name string, t *Table) (string, error) {
	if t == nil {
		t = NewTable()
	}
	f, err := os.CreateTemp(s.dir, name+".csv.*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmp := f.Name()

	fail := func(err error) (string, error) {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write table %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fail(err)
	}
	rec := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, col := range t.Columns {
			rec[i] = r[col]
		}
		if err := w.Write(rec); err != nil {
			return fail(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	return tmp, nil
}

func (s *CSVStore) writeJournal(j journal) error {
	buf, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to encode commit journal: %w", err)
	}
	tmp := filepath.Join(s.dir, journalName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create commit journal: %w", err)
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write commit journal: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync commit journal: %w", err)
	}
	f.Close()
	if err := os.Rename(tmp, filepath.Join(s.dir, journalName)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit journal: %w", err)
	}
	return nil
}

func (s *CSVStore) applyJournal(j journal) error {
	for _, e := range j.Renames {
		if _, err := os.Stat(e.From); errors.Is(err, os.ErrNotExist) {
			// already applied before an interruption
			continue
		}
		if err := os.Rename(e.From, e.To); err != nil {
			return fmt.Errorf("failed to apply commit for %s: %w", filepath.Base(e.To), err)
		}
	}
	if err := os.Remove(filepath.Join(s.dir, journalName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove commit journal: %w", err)
	}
	return nil
}

func (s *CSVStore) recover() error {
	buf, err := os.ReadFile(filepath.Join(s.dir, journalName))
	switch {
	case err == nil:
		var j journal
		if err := json.Unmarshal(buf, &j); err != nil {
			return fmt.Errorf("corrupt commit journal: %w", err)
		}
		log.Printf("tablestore: rolling forward interrupted commit of %d table(s)", len(j.Renames))
		if err := s.applyJournal(j); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read commit journal: %w", err)
	}

	stray, err := filepath.Glob(filepath.Join(s.dir, "*.tmp"))
	if err != nil {
		return err
	}
	for _, p := range stray {
		os.Remove(p)
	}
	return nil
}
