// Package session keeps per-upload state for the HTTP API.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

var (
	// ErrNotFound is returned for unknown session ids.
	ErrNotFound = errors.New("session not found")
	// ErrChartNotFound is returned for an out-of-range chart index.
	ErrChartNotFound = errors.New("chart not found")
)

// Selection is the last pair of axes chosen for a session.
type Selection struct {
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
}

// Chart is one entry in a session's chart history.
type Chart struct {
	Kind        models.ChartKind         `json:"kind"`
	ThreeD      bool                     `json:"is_3d"`
	XAxis       string                   `json:"x_axis"`
	YAxis       string                   `json:"y_axis"`
	Description *models.ChartDescription `json:"chart,omitempty"`
	Scene       *models.BarScene         `json:"scene,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
}

// Session is the state of one uploaded file.
type Session struct {
	ID        string          `json:"id"`
	File      models.FileInfo `json:"file"`
	Dataset   *models.Dataset `json:"-"`
	Selection *Selection      `json:"selection,omitempty"`
	Charts    []Chart         `json:"charts"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store is a concurrency-safe in-memory session registry.
// When full, the oldest session is evicted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string
	max      int
	now      func() time.Time
}

// NewStore creates a store holding at most max sessions (unbounded if max <= 0).
func NewStore(max int) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		max:      max,
		now:      time.Now,
	}
}

// Create registers a new session for an uploaded dataset.
func (s *Store) Create(file models.FileInfo, ds *models.Dataset) *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		File:      file,
		Dataset:   ds,
		Charts:    []Chart{},
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess
	s.order = append(s.order, sess.ID)
	for s.max > 0 && len(s.order) > s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
	}
	return sess.snapshot()
}

// Get returns a copy of the session. The dataset is shared and must not be
// modified.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.snapshot(), nil
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SelectAxes records the axes chosen for a session.
func (s *Store) SelectAxes(id, x, y string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Selection = &Selection{XAxis: x, YAxis: y}
	return nil
}

// SaveChart appends c to the session's history, updates the selection and
// returns the chart's index.
func (s *Store) SaveChart(id string, c Chart) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return 0, ErrNotFound
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	sess.Charts = append(sess.Charts, c)
	sess.Selection = &Selection{XAxis: c.XAxis, YAxis: c.YAxis}
	return len(sess.Charts) - 1, nil
}

// Charts returns the session's chart history in creation order.
func (s *Store) Charts(id string) ([]Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]Chart(nil), sess.Charts...), nil
}

// Chart returns one entry of the session's chart history.
func (s *Store) Chart(id string, index int) (Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Chart{}, ErrNotFound
	}
	if index < 0 || index >= len(sess.Charts) {
		return Chart{}, ErrChartNotFound
	}
	return sess.Charts[index], nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (sess *Session) snapshot() *Session {
	cp := *sess
	cp.Charts = append([]Chart{}, sess.Charts...)
	if sess.Selection != nil {
		sel := *sess.Selection
		cp.Selection = &sel
	}
	return &cp
}
