package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"alpha-terminal/models"
)

var (
	ErrItemNotFound    = errors.New("intel item not found")
	ErrAlreadyAnalyzed = errors.New("intel item already analyzed")
)

// FeedStore holds the intel feed, newest first.
type FeedStore struct {
	mu    sync.RWMutex
	items []models.IntelItem
	bus   *broadcaster[models.IntelItem]
}

func NewFeedStore() *FeedStore {
	return &FeedStore{bus: newBroadcaster[models.IntelItem]()}
}

func (f *FeedStore) Initialize() {
	seed := seedFeed(time.Now())
	f.mu.Lock()
	f.items = seed
	f.mu.Unlock()
}

func (f *FeedStore) Prepend(item models.IntelItem) {
	f.mu.Lock()
	next := make([]models.IntelItem, 0, len(f.items)+1)
	next = append(next, item)
	f.items = append(next, f.items...)
	f.mu.Unlock()

	f.bus.send(item)
}

// MarkAnalyzed flips the analyzed flag on id and links it to signalID.
// An item can be marked only once.
func (f *FeedStore) MarkAnalyzed(id, signalID string) (models.IntelItem, error) {
	f.mu.Lock()
	var (
		updated models.IntelItem
		found   bool
	)
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if f.items[i].Analyzed {
			f.mu.Unlock()
			return f.items[i], fmt.Errorf("%w: %s", ErrAlreadyAnalyzed, id)
		}
		ref := signalID
		f.items[i].Analyzed = true
		f.items[i].RelatedSignalID = &ref
		updated = f.items[i]
		found = true
		break
	}
	f.mu.Unlock()

	if !found {
		return models.IntelItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	f.bus.send(updated)
	return updated, nil
}

func (f *FeedStore) Get(id string) (models.IntelItem, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, item := range f.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.IntelItem{}, false
}

func (f *FeedStore) Snapshot() []models.IntelItem {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.IntelItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *FeedStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Pending counts items still waiting on (or abandoned by) analysis.
func (f *FeedStore) Pending() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, item := range f.items {
		if !item.Analyzed {
			n++
		}
	}
	return n
}

// Subscribe receives every prepended item and every in-place update.
func (f *FeedStore) Subscribe(buf int) <-chan models.IntelItem {
	return f.bus.subscribe(buf)
}

func (f *FeedStore) Unsubscribe(ch <-chan models.IntelItem) {
	f.bus.unsubscribe(ch)
}

func (f *FeedStore) Dropped() uint64 {
	return f.bus.droppedCount()
}
