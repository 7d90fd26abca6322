package db

import (
	"slices"
	"sync"
)

// memoryStore is a concurrency safe record store keyed by int64 ids. New records get
// max(id)+1, so ids are not reused while the highest record lives.
type memoryStore[T any] struct {
	mu      sync.RWMutex
	records map[int64]T
	idOf    func(T) int64
	withID  func(T, int64) T
}

func newMemoryStore[T any](idOf func(T) int64, withID func(T, int64) T) *memoryStore[T] {
	return &memoryStore[T]{
		records: make(map[int64]T),
		idOf:    idOf,
		withID:  withID,
	}
}

// list returns the records accepted by keep, ordered by id
func (s *memoryStore[T]) list(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.records))
	for _, record := range s.records {
		if keep == nil || keep(record) {
			result = append(result, record)
		}
	}
	slices.SortFunc(result, func(a, b T) int {
		return compareIDs(s.idOf(a), s.idOf(b))
	})
	return result
}

func (s *memoryStore[T]) get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

func (s *memoryStore[T]) insert(records ...T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := int64(0)
	for id := range s.records {
		next = max(next, id)
	}

	created := make([]T, 0, len(records))
	for _, record := range records {
		next++
		record = s.withID(record, next)
		s.records[next] = record
		created = append(created, record)
	}
	return created
}

// replace overwrites the stored records that exist and returns them
func (s *memoryStore[T]) replace(records ...T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make([]T, 0, len(records))
	for _, record := range records {
		id := s.idOf(record)
		if _, ok := s.records[id]; !ok {
			continue
		}
		s.records[id] = record
		replaced = append(replaced, record)
	}
	return replaced
}

func (s *memoryStore[T]) remove(ids ...int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for _, id := range ids {
		if _, ok := s.records[id]; ok {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

func (s *memoryStore[T]) removeWhere(match func(T) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, record := range s.records {
		if match(record) {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

func compareIDs(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
