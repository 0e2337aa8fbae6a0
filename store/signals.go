package store

import (
	"sync"
	"time"

	"alpha-terminal/models"
)

// SignalStore is the session's ordered signal log, newest first.
type SignalStore struct {
	mu      sync.RWMutex
	signals []models.TradeSignal
	bus     *broadcaster[models.TradeSignal]
}

func NewSignalStore() *SignalStore {
	return &SignalStore{bus: newBroadcaster[models.TradeSignal]()}
}

// Initialize replaces the collection with the fixed seed set. Seeds are not
// broadcast to subscribers.
func (s *SignalStore) Initialize() {
	seed := seedSignals(time.Now())
	s.mu.Lock()
	s.signals = seed
	s.mu.Unlock()
}

// Publish prepends sig and notifies subscribers. It never fails.
func (s *SignalStore) Publish(sig models.TradeSignal) {
	s.mu.Lock()
	next := make([]models.TradeSignal, 0, len(s.signals)+1)
	next = append(next, sig)
	s.signals = append(next, s.signals...)
	s.mu.Unlock()

	s.bus.send(sig)
}

func (s *SignalStore) Snapshot() []models.TradeSignal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TradeSignal, len(s.signals))
	copy(out, s.signals)
	return out
}

func (s *SignalStore) Get(id string) (models.TradeSignal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sig := range s.signals {
		if sig.ID == id {
			return sig, true
		}
	}
	return models.TradeSignal{}, false
}

// ByHorizon partitions the snapshot by horizon, keeping newest-first order
// inside each bucket. Every known horizon has an entry, possibly empty.
func (s *SignalStore) ByHorizon() map[models.Horizon][]models.TradeSignal {
	out := make(map[models.Horizon][]models.TradeSignal, len(models.Horizons))
	for _, h := range models.Horizons {
		out[h] = []models.TradeSignal{}
	}
	for _, sig := range s.Snapshot() {
		out[sig.Horizon] = append(out[sig.Horizon], sig)
	}
	return out
}

func (s *SignalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signals)
}

// Subscribe returns a channel receiving every signal published after the call.
func (s *SignalStore) Subscribe(buf int) <-chan models.TradeSignal {
	return s.bus.subscribe(buf)
}

func (s *SignalStore) Unsubscribe(ch <-chan models.TradeSignal) {
	s.bus.unsubscribe(ch)
}

func (s *SignalStore) Subscribers() int {
	return s.bus.count()
}

// Dropped reports deliveries skipped because a subscriber was full.
func (s *SignalStore) Dropped() uint64 {
	return s.bus.droppedCount()
}
