package discord

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/ladder/internal/services/league"
)

// SessionFactory creates a fresh league session
type SessionFactory func() (league.Service, error)

// SessionStore keeps one league session per channel. discordgo runs
// handlers on their own goroutines so access is serialized here.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*channelSession
	factory  SessionFactory
}

type channelSession struct {
	mu      sync.Mutex
	service league.Service
}

// NewSessionStore creates a session store
func NewSessionStore(factory SessionFactory) (*SessionStore, error) {
	if factory == nil {
		return nil, errors.New("session factory cannot be nil")
	}

	return &SessionStore{
		sessions: make(map[string]*channelSession),
		factory:  factory,
	}, nil
}

// With runs fn with the channel's session, creating it on first use.
// Commands on one channel never overlap.
func (s *SessionStore) With(channelID string, fn func(league.Service) error) error {
	cs, err := s.get(channelID)
	if err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	return fn(cs.service)
}

// Len returns the number of channels with a session
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *SessionStore) get(channelID string) (*channelSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs, ok := s.sessions[channelID]; ok {
		return cs, nil
	}

	service, err := s.factory()
	if err != nil {
		return nil, err
	}

	cs := &channelSession{service: service}
	s.sessions[channelID] = cs
	logrus.WithField("channel", channelID).Debug("created league session")

	return cs, nil
}
