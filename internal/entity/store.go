package entity

import "go-creep-defense/internal/types"

// Store хранит компоненты одного типа в порядке добавления.
// Удаление во время обхода оставляет "надгробие" в order,
// которое вычищается после окончания всех обходов.
type Store[T any] struct {
	items     map[types.EntityID]*T
	order     []types.EntityID
	removed   int
	iterating int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[types.EntityID]*T),
		order: make([]types.EntityID, 0, 64),
	}
}

// Add inserts a component. Adding an existing ID replaces the value and
// keeps its position in the iteration order.
func (s *Store[T]) Add(id types.EntityID, v *T) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

// Remove deletes the component and reports whether it was present.
func (s *Store[T]) Remove(id types.EntityID) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	s.removed++
	s.compact()
	return true
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

// Each visits live components in insertion order. Components removed during
// the walk are skipped; components added during the walk are not visited.
func (s *Store[T]) Each(fn func(id types.EntityID, v *T)) {
	s.iterating++
	n := len(s.order)
	for i := 0; i < n; i++ {
		id := s.order[i]
		v, ok := s.items[id]
		if !ok {
			continue
		}
		fn(id, v)
	}
	s.iterating--
	s.compact()
}

// IDs returns the live IDs in insertion order.
func (s *Store[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.items))
	for _, id := range s.order {
		if _, ok := s.items[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store[T]) Clear() {
	s.items = make(map[types.EntityID]*T)
	if s.iterating > 0 {
		s.removed = len(s.order)
		return
	}
	s.order = s.order[:0]
	s.removed = 0
}

func (s *Store[T]) compact() {
	if s.iterating > 0 || s.removed == 0 {
		return
	}
	live := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.items[id]; ok {
			live = append(live, id)
		}
	}
	// Хвост обнуляем, чтобы не держать старые значения.
	for i := len(live); i < len(s.order); i++ {
		s.order[i] = 0
	}
	s.order = live
	s.removed = 0
}
