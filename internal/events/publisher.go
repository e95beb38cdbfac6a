// Package events publishes entity-change notifications to NATS on a
// best-effort basis: a missing connection or a failed publish never
// fails the operation that triggered it.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const (
	SubjectUserCreated       = "authd.users.created"
	SubjectUserDeleted       = "authd.users.deleted"
	SubjectRoleCreated       = "authd.roles.created"
	SubjectAssignmentCreated = "authd.assignments.created"
	SubjectAssignmentDeleted = "authd.assignments.deleted"
)

// Publisher wraps a NATS connection.
type Publisher struct {
	conn *nats.Conn
}

// Connect dials the NATS endpoint. An empty URL returns a nil Publisher,
// which disables publishing everywhere it is passed.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := nats.Connect(url, nats.Name("authd"))
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

// Close drains the underlying connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

// Publish sends payload as JSON on subject, stamped with an event id
// and timestamp.
func (p *Publisher) Publish(subject string, payload map[string]any) {
	if p == nil || p.conn == nil || subject == "" {
		return
	}

	payload["event_id"] = uuid.NewString()
	payload["at"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("publish event")
	}
}
