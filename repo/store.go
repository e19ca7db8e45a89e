package repo

import "sync"

// memStore хранит указатели на сущности в порядке добавления. Наружу
// отдаются те же указатели, поэтому правки полей видны всем.
type memStore[ID comparable, T any] struct {
	mu    sync.RWMutex
	items []*T
	idOf  func(*T) ID
}

func newMemStore[ID comparable, T any](idOf func(*T) ID) *memStore[ID, T] {
	return &memStore[ID, T]{idOf: idOf}
}

func (s *memStore[ID, T]) add(v *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, v)
}

// remove удаляет все элементы с id и возвращает их число.
func (s *memStore[ID, T]) remove(id ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, v := range s.items {
		if s.idOf(v) != id {
			kept = append(kept, v)
		}
	}
	n := len(s.items) - len(kept)
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return n
}

func (s *memStore[ID, T]) get(id ID) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.items {
		if s.idOf(v) == id {
			return v, true
		}
	}
	return nil, false
}

func (s *memStore[ID, T]) list() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*T(nil), s.items...)
}

func (s *memStore[ID, T]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*T
	for _, v := range s.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
