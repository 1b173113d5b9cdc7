package tablestore

import (
	"context"
	"sync"
)

// CachedStore memoizes loaded tables by name. Every successful save through
// it replaces the cached copy, so writes made through other processes are not
// observed until the next save or Invalidate.
type CachedStore struct {
	next Store

	mu     sync.RWMutex
	tables map[string]*Table
}

func NewCachedStore(next Store) *CachedStore {
	return &CachedStore{next: next, tables: make(map[string]*Table)}
}

func (c *CachedStore) Load(ctx context.Context, name string) (*Table, error) {
	c.mu.RLock()
	t, ok := c.tables[name]
	c.mu.RUnlock()
	if ok {
		return t.Clone(), nil
	}

	t, err := c.next.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.tables[name] = t.Clone()
	c.mu.Unlock()
	return t, nil
}

func (c *CachedStore) Save(ctx context.Context, name string, t *Table) error {
	if err := c.next.Save(ctx, name, t); err != nil {
		c.Invalidate(name)
		return err
	}
	c.put(name, t)
	return nil
}

func (c *CachedStore) SaveAll(ctx context.Context, changes ...Change) error {
	if err := c.next.SaveAll(ctx, changes...); err != nil {
		for _, ch := range changes {
			c.Invalidate(ch.Name)
		}
		return err
	}
	for _, ch := range changes {
		c.put(ch.Name, ch.Table)
	}
	return nil
}

func (c *CachedStore) put(name string, t *Table) {
	cp := t.Clone()
	Normalize(cp)
	c.mu.Lock()
	c.tables[name] = cp
	c.mu.Unlock()
}

// Invalidate drops one table, or all tables when no name is given.
func (c *CachedStore) Invalidate(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(names) == 0 {
		c.tables = make(map[string]*Table)
		return
	}
	for _, n := range names {
		delete(c.tables, n)
	}
}

func (c *CachedStore) Close(ctx context.Context) error {
	return c.next.Close(ctx)
}
