// Package confirm holds the two-step confirmation state for inventory mutations.
//
// Each (user, conversation) pair is either idle or has exactly one pending request.
// A reply from the same user commits or discards it; requests expire after a TTL.
package confirm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
)

// Pending is a mutation waiting for the user's answer
type Pending struct {
	ID             string
	UserID         string
	ConversationID string
	Action         Action
	SkinName       string
	// Quantity is nil when removing the whole entry
	Quantity  *int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Decision is the result of answering a pending request
type Decision struct {
	Pending Pending
	Outcome Outcome
}

// Committed reports whether the mutation should be applied
func (d Decision) Committed() bool {
	return d.Outcome == OutcomeCommitted
}

// Manager tracks pending confirmations
type Manager interface {
	// Begin stores p, replacing any request the user already has in that conversation
	Begin(ctx context.Context, p Pending) Pending

	// Resolve answers the actor's pending request in the conversation
	Resolve(ctx context.Context, actorID, conversationID, answer string) (Decision, error)

	// Peek returns the actor's live pending request, if any
	Peek(actorID, conversationID string) (Pending, bool)

	// Cancel drops the actor's pending request
	Cancel(actorID, conversationID string) bool

	Len() int
}

type manager struct {
	ttl     time.Duration
	now     func() time.Time
	pending *expirable.LRU[string, Pending]
}

// Option configures a Manager
type Option func(*manager)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(m *manager) { m.now = now }
}

// NewManager creates a Manager. Entries are kept a little past their TTL so a late
// answer is told it expired instead of being ignored.
func NewManager(ttl time.Duration, capacity int, opts ...Option) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &manager{
		ttl:     ttl,
		now:     time.Now,
		pending: expirable.NewLRU[string, Pending](capacity, nil, 2*ttl),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func key(userID, conversationID string) string {
	return userID + keySeparator + conversationID
}

func (m *manager) Begin(ctx context.Context, p Pending) Pending {
	log := logger.FromContext(ctx)

	now := m.now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.ExpiresAt = now.Add(m.ttl)

	k := key(p.UserID, p.ConversationID)
	if prev, ok := m.pending.Get(k); ok {
		log.Info(LogMsgPendingReplaced, "user_id", p.UserID, "previous_id", prev.ID)
		metrics.ConfirmationsTotal.WithLabelValues(string(OutcomeReplaced)).Inc()
	}
	m.pending.Add(k, p)

	log.Info(LogMsgPendingCreated, "user_id", p.UserID, "pending_id", p.ID, "action", p.Action, "item", p.SkinName)
	return p
}

func (m *manager) Resolve(ctx context.Context, actorID, conversationID, answer string) (Decision, error) {
	log := logger.FromContext(ctx)

	k := key(actorID, conversationID)
	p, ok := m.pending.Get(k)
	if !ok {
		if owner, found := m.ownerOf(conversationID); found {
			log.Warn(LogMsgHijackAttempt, "actor_id", actorID, "owner_id", owner)
			metrics.ConfirmationsTotal.WithLabelValues(string(OutcomeHijack)).Inc()
			return Decision{}, fmt.Errorf("%w: conversation %s", domain.ErrConfirmationHijack, conversationID)
		}
		return Decision{}, domain.ErrNoPendingConfirmation
	}

	m.pending.Remove(k)

	if !m.now().Before(p.ExpiresAt) {
		log.Info(LogMsgPendingExpired, "user_id", actorID, "pending_id", p.ID)
		metrics.ConfirmationsTotal.WithLabelValues(string(OutcomeExpired)).Inc()
		return Decision{Pending: p, Outcome: OutcomeExpired}, domain.ErrConfirmationExpired
	}

	outcome := OutcomeDiscarded
	if IsAffirmative(answer) {
		outcome = OutcomeCommitted
	}
	metrics.ConfirmationsTotal.WithLabelValues(string(outcome)).Inc()
	log.Info(LogMsgPendingResolved, "user_id", actorID, "pending_id", p.ID, "outcome", outcome)

	return Decision{Pending: p, Outcome: outcome}, nil
}

func (m *manager) Peek(actorID, conversationID string) (Pending, bool) {
	p, ok := m.pending.Peek(key(actorID, conversationID))
	if !ok || !m.now().Before(p.ExpiresAt) {
		return Pending{}, false
	}
	return p, true
}

func (m *manager) Cancel(actorID, conversationID string) bool {
	return m.pending.Remove(key(actorID, conversationID))
}

func (m *manager) Len() int {
	return m.pending.Len()
}

// ownerOf finds a live pending request from any user in the conversation
func (m *manager) ownerOf(conversationID string) (string, bool) {
	now := m.now()
	for _, p := range m.pending.Values() {
		if p.ConversationID == conversationID && now.Before(p.ExpiresAt) {
			return p.UserID, true
		}
	}
	return "", false
}

// IsAffirmative reports whether answer confirms a pending request
func IsAffirmative(answer string) bool {
	normalized := strings.Trim(domain.NormalizeName(answer), ".!")
	return affirmativeAnswers[normalized]
}
