package history

import (
	"container/list"
	"sync"
)

// LRUStore keeps the most recent records in memory and delegates to a
// backing Store on miss.
type LRUStore struct {
	mu    sync.Mutex
	cap   int
	back  Store
	order *list.List // most recent at front; values are *Record
	items map[string]*list.Element
}

// NewLRUStore creates an LRU cache of the given capacity in front of back.
func NewLRUStore(capacity int, back Store) *LRUStore {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUStore{
		cap:   capacity,
		back:  back,
		order: list.New(),
		items: make(map[string]*list.Element, capacity),
	}
}

// Save caches the record and delegates to the backing store.
func (s *LRUStore) Save(rec *Record) error {
	s.mu.Lock()
	s.insert(rec)
	s.mu.Unlock()
	return s.back.Save(rec)
}

// Load checks the cache first; on miss it loads from the backing store and
// promotes the record.
func (s *LRUStore) Load(id string) (*Record, error) {
	s.mu.Lock()
	if e, ok := s.items[id]; ok {
		s.order.MoveToFront(e)
		rec := e.Value.(*Record)
		s.mu.Unlock()
		return rec, nil
	}
	s.mu.Unlock()

	rec, err := s.back.Load(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.insert(rec)
	s.mu.Unlock()
	return rec, nil
}

// insert adds or refreshes a record, evicting the oldest entry past cap.
// Callers hold mu.
func (s *LRUStore) insert(rec *Record) {
	if e, ok := s.items[rec.ID]; ok {
		e.Value = rec
		s.order.MoveToFront(e)
		return
	}
	s.items[rec.ID] = s.order.PushFront(rec)
	if s.order.Len() > s.cap {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(*Record).ID)
	}
}
