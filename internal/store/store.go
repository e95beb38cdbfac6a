package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/events"
)

const queryTimeout = 5 * time.Second

// Store runs the domain operations against the schema. It holds the
// storage handle explicitly; nothing reaches into ambient state.
type Store struct {
	orm    *gorm.DB
	events *events.Publisher
}

// New wires a Store. The publisher may be nil, which disables events.
func New(orm *gorm.DB, publisher *events.Publisher) *Store {
	return &Store{orm: orm, events: publisher}
}

// Ping reports whether the storage engine is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	sqlDB, err := s.orm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) publish(subject string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(subject, payload)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
