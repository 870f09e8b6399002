package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"xiangqi/internal/xiangqi"
)

type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Session
	logger *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{games: make(map[string]*Session), logger: logger}
}

func (m *Manager) NewGame() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	s := &Session{
		ID:        id,
		game:      xiangqi.NewGame(xiangqi.WithLogger(m.logger.With(zap.String("game_id", id)))),
		createdAt: now,
		updatedAt: now,
	}
	m.games[id] = s
	m.logger.Debug("game created", zap.String("game_id", id), zap.Int("games", len(m.games)))
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	m.logger.Debug("game deleted", zap.String("game_id", id))
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
