package safety

import (
	"math"
	"sync"
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
)

const DefaultAlertCapacity = 10000

var maxWindowHours = float64(math.MaxInt64 / int64(time.Hour))

// AlertStore is a fixed-capacity FIFO ring of alerts. When full, appending
// evicts the oldest entry.
type AlertStore struct {
	mu       sync.RWMutex
	buf      []domain.Violation
	capacity int
	seq      int            // total alerts ever appended
	index    map[string]int // alert id -> sequence number
	clock    func() time.Time
}

func NewAlertStore(capacity int) *AlertStore {
	if capacity <= 0 {
		capacity = DefaultAlertCapacity
	}
	return &AlertStore{
		buf:      make([]domain.Violation, capacity),
		capacity: capacity,
		index:    make(map[string]int),
		clock:    time.Now,
	}
}

// WithClock overrides the clock used for time-window queries.
func (s *AlertStore) WithClock(clock func() time.Time) *AlertStore {
	s.clock = clock
	return s
}

func (s *AlertStore) Append(alerts ...domain.Violation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(alerts...)
}

func (s *AlertStore) appendLocked(alerts ...domain.Violation) {
	for _, a := range alerts {
		pos := s.seq % s.capacity
		if s.seq >= s.capacity {
			delete(s.index, s.buf[pos].ID)
		}
		s.buf[pos] = a
		s.index[a.ID] = s.seq
		s.seq++
	}
}

func (s *AlertStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lenLocked()
}

func (s *AlertStore) lenLocked() int {
	if s.seq < s.capacity {
		return s.seq
	}
	return s.capacity
}

func (s *AlertStore) Capacity() int {
	return s.capacity
}

// All returns a copy of the stored alerts, oldest first.
func (s *AlertStore) All() []domain.Violation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(domain.Violation) bool { return true })
}

// Get returns a copy of one alert.
func (s *AlertStore) Get(id string) (domain.Violation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq, ok := s.index[id]
	if !ok {
		return domain.Violation{}, false
	}
	return copyViolation(s.buf[seq%s.capacity]), true
}

// Recent returns alerts raised within the last hours, oldest first. An empty
// category matches every category. Windows longer than a time.Duration can hold,
// including +Inf, match every buffered alert; negative or NaN hours match only
// alerts stamped at the current instant.
func (s *AlertStore) Recent(hours float64, category domain.Category) []domain.Violation {
	window, unbounded := windowFor(hours)
	cutoff := s.clock().Add(-window)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(a domain.Violation) bool {
		if !unbounded && a.Timestamp.Before(cutoff) {
			return false
		}
		return category == "" || a.Category == category
	})
}

func windowFor(hours float64) (time.Duration, bool) {
	switch {
	case math.IsNaN(hours) || hours <= 0:
		return 0, false
	case hours >= maxWindowHours:
		return 0, true
	}
	return time.Duration(hours * float64(time.Hour)), false
}

func (s *AlertStore) filterLocked(keep func(domain.Violation) bool) []domain.Violation {
	n := s.lenLocked()
	out := make([]domain.Violation, 0, n)
	first := s.seq - n
	for seq := first; seq < s.seq; seq++ {
		a := s.buf[seq%s.capacity]
		if keep(a) {
			out = append(out, copyViolation(a))
		}
	}
	return out
}

// Resolve marks an alert resolved. Resolving an already resolved alert is a
// successful no-op; unknown or evicted ids return false.
func (s *AlertStore) Resolve(id, note string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.index[id]
	if !ok {
		return false
	}
	a := &s.buf[seq%s.capacity]
	if a.Resolved {
		return true
	}
	now := s.clock()
	a.Resolved = true
	a.ResolvedAt = &now
	a.ResolutionNote = note
	return true
}

// Unresolved counts stored alerts that are still open.
func (s *AlertStore) Unresolved() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	n := s.lenLocked()
	for seq := s.seq - n; seq < s.seq; seq++ {
		if !s.buf[seq%s.capacity].Resolved {
			count++
		}
	}
	return count
}

func copyViolation(v domain.Violation) domain.Violation {
	if v.Metadata != nil {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		v.Metadata = md
	}
	if v.ResolvedAt != nil {
		at := *v.ResolvedAt
		v.ResolvedAt = &at
	}
	return v
}
