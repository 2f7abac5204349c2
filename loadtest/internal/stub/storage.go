package stub

import (
	"sync"
	"time"
)

// SinkStorage holds the notifications received during a load test run,
// in memory and per user.
type SinkStorage struct {
	mu       sync.RWMutex
	received map[string][]ReceivedNotification
}

func NewSinkStorage() *SinkStorage {
	return &SinkStorage{
		received: make(map[string][]ReceivedNotification),
	}
}

func (s *SinkStorage) Add(n ReceivedNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ReceivedAt.IsZero() {
		n.ReceivedAt = time.Now().UTC()
	}
	s.received[n.UserID] = append(s.received[n.UserID], n)
}

func (s *SinkStorage) ForUser(userID string) []ReceivedNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ReceivedNotification(nil), s.received[userID]...)
}

func (s *SinkStorage) All() []ReceivedNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]ReceivedNotification, 0)
	for _, list := range s.received {
		all = append(all, list...)
	}
	return all
}

func (s *SinkStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.received = make(map[string][]ReceivedNotification)
}
