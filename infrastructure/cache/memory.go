package cache

import (
	"context"
	"sync"
	"time"
)

// memorySweepInterval é o intervalo mínimo entre varreduras de entradas expiradas
const memorySweepInterval = time.Minute

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore é usado quando não há Redis configurado, numa única instância.
// Entradas expiradas saem ao serem lidas ou na varredura feita no máximo uma vez por minuto.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	nowFn     func() time.Time
	lastSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		nowFn:   time.Now,
	}
}

// WithClock troca o relógio usado para expirar entradas
func (s *MemoryStore) WithClock(nowFn func() time.Time) *MemoryStore {
	s.nowFn = nowFn
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepExpired(now)

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrMiss
	}

	if entry.expired(now) {
		delete(s.entries, key)
		return nil, ErrMiss
	}

	return entry.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.nowFn()

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	s.mu.Lock()
	s.sweepExpired(now)
	s.entries[key] = entry
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	return nil
}

// Len devolve a quantidade de entradas guardadas, incluindo as expiradas ainda não varridas
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweepExpired deve ser chamado com o lock adquirido
func (s *MemoryStore) sweepExpired(now time.Time) {
	if now.Sub(s.lastSweep) < memorySweepInterval {
		return
	}
	s.lastSweep = now

	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
		}
	}
}
