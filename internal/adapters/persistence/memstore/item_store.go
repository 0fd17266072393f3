// Package memstore provides the process-local, in-memory stores behind the
// catalog and the request ledger. All state lives for the lifetime of the
// process; there is no persistence layer underneath.
package memstore

import (
	"fmt"
	"sync"

	"neighborshare/internal/core/domain"
)

// ItemStore owns every Item record. Items are never deleted, so insertion
// order is stable and doubles as the base order for catalog queries.
type ItemStore struct {
	mu    sync.RWMutex
	items []*domain.Item
	byID  map[string]*domain.Item
	seq   int
}

// NewItemStore creates an empty item store
func NewItemStore() *ItemStore {
	return &ItemStore{
		byID: make(map[string]*domain.Item),
	}
}

// Add assigns the next sequential id to item and appends it to the catalog.
// The id comes from a monotonic counter, not the collection length, so ids
// can never be reissued.
func (s *ItemStore) Add(item domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	item.ID = fmt.Sprintf("itm%03d", s.seq)

	stored := copyItem(&item)
	s.items = append(s.items, &stored)
	s.byID[stored.ID] = &stored
	return copyItem(&stored)
}

// Get returns the item with the given id
func (s *ItemStore) Get(id string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return copyItem(item), nil
}

// List returns a snapshot of all items in insertion order
func (s *ItemStore) List() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, copyItem(item))
	}
	return out
}

// Len returns the number of items in the catalog
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Hold atomically marks an available item unavailable. A second caller
// racing for the same item loses with ErrItemUnavailable, which is what
// serializes competing borrow requests.
func (s *ItemStore) Hold(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	if !item.Available {
		return domain.ErrItemUnavailable
	}
	item.Available = false
	return nil
}

// Release makes an item available again and clears its borrower
func (s *ItemStore) Release(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Available = true
	item.BorrowedBy = nil
	return nil
}

// MarkBorrowed records that an item is now with borrower and bumps its
// borrow count. An available item on true means nobody has it, so the
// flag is forced off here even if no hold preceded the call.
func (s *ItemStore) MarkBorrowed(id, borrower string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	b := borrower
	item.Available = false
	item.BorrowedBy = &b
	item.BorrowCount++
	return nil
}

// copyItem returns a deep copy so stored state and caller state can
// never alias each other. Empty tag slices stay non-nil so the JSON
// form is [] rather than null.
func copyItem(item *domain.Item) domain.Item {
	out := *item
	if item.BorrowedBy != nil {
		b := *item.BorrowedBy
		out.BorrowedBy = &b
	}
	if item.Tags != nil {
		out.Tags = append([]string{}, item.Tags...)
	}
	return out
}
