// Package memstore holds in-memory person, book and user repositories with the
// same observable behavior as the Postgres ones. Reads and writes are counted
// so tests can assert how often the store was hit.
package memstore

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"library-backend/internal/shared/hateoas"
)

type compareFunc[T any] func(a, b T) int

type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64

	id       func(T) int64
	setID    func(*T, int64)
	compare  map[string]compareFunc[T]
	notFound error

	reads  atomic.Int64
	writes atomic.Int64
}

func newTable[T any](id func(T) int64, setID func(*T, int64), compare map[string]compareFunc[T], notFound error, seed []T) *table[T] {
	t := &table[T]{
		rows:     make(map[int64]T, len(seed)),
		id:       id,
		setID:    setID,
		compare:  compare,
		notFound: notFound,
	}
	for _, row := range seed {
		t.rows[id(row)] = row
		t.nextID = max(t.nextID, id(row))
	}
	return t
}

func (t *table[T]) findByID(id int64) (*T, error) {
	t.reads.Add(1)
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound
	}
	return &row, nil
}

func (t *table[T]) findPage(req hateoas.PageRequest) ([]T, int64) {
	t.reads.Add(1)
	t.mu.RLock()
	all := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		all = append(all, row)
	}
	t.mu.RUnlock()

	byField := t.compare[req.Sort]
	slices.SortFunc(all, func(a, b T) int {
		if byField != nil {
			c := byField(a, b)
			if req.Direction == hateoas.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(t.id(a), t.id(b))
	})

	total := int64(len(all))
	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))
	return all[start:end], total
}

func (t *table[T]) save(row *T) (*T, error) {
	t.writes.Add(1)
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *row
	if t.id(stored) == 0 {
		t.nextID++
		t.setID(&stored, t.nextID)
	} else if _, ok := t.rows[t.id(stored)]; !ok {
		return nil, t.notFound
	}

	t.rows[t.id(stored)] = stored
	return &stored, nil
}

func (t *table[T]) deleteByID(id int64) error {
	t.writes.Add(1)
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) existsByID(id int64) bool {
	t.reads.Add(1)
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.rows[id]
	return ok
}

// Reads is the number of read calls served so far.
func (t *table[T]) Reads() int64 { return t.reads.Load() }

// Writes is the number of save and delete calls served so far.
func (t *table[T]) Writes() int64 { return t.writes.Load() }
