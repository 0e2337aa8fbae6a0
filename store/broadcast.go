package store

import (
	"sync"
	"sync/atomic"
)

// broadcaster fans values out to channel subscribers without blocking the writer.
type broadcaster[T any] struct {
	mu      sync.RWMutex
	subs    map[chan T]struct{}
	dropped uint64
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: map[chan T]struct{}{}}
}

func (b *broadcaster[T]) subscribe(buf int) <-chan T {
	if buf <= 0 {
		buf = 16
	}
	ch := make(chan T, buf)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *broadcaster[T]) unsubscribe(ch <-chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		if sub == ch {
			delete(b.subs, sub)
			close(sub)
			return
		}
	}
}

func (b *broadcaster[T]) send(v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- v:
		default:
			// Slow subscriber; writers never wait on views.
			atomic.AddUint64(&b.dropped, 1)
		}
	}
}

func (b *broadcaster[T]) count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *broadcaster[T]) droppedCount() uint64 {
	return atomic.LoadUint64(&b.dropped)
}
