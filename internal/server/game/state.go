package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

// Session 一个棋局；对 Game 的所有调用都要经过 Do 串行化
type Session struct {
	ID string

	mu        sync.Mutex
	game      *xiangqi.Game
	createdAt time.Time
	updatedAt time.Time
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *xiangqi.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
	s.updatedAt = time.Now()
}

func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
