package confirm

import "time"

// Defaults
const (
	DefaultTTL      = 2 * time.Minute
	DefaultCapacity = 10000
)

// Action is the mutation awaiting confirmation
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Outcome is how a pending confirmation ended
type Outcome string

const (
	OutcomeCommitted Outcome = "committed"
	OutcomeDiscarded Outcome = "discarded"
	OutcomeExpired   Outcome = "expired"
	OutcomeReplaced  Outcome = "replaced"
	OutcomeHijack    Outcome = "hijack"
)

// affirmativeAnswers commit a pending mutation; every other reply discards it
var affirmativeAnswers = map[string]bool{
	"да":  true,
	"д":   true,
	"yes": true,
	"y":   true,
}

// Log messages
const (
	LogMsgPendingCreated  = "Pending confirmation created"
	LogMsgPendingReplaced = "Pending confirmation replaced"
	LogMsgPendingResolved = "Pending confirmation resolved"
	LogMsgPendingExpired  = "Pending confirmation expired"
	LogMsgHijackAttempt   = "Confirmation answered by another user"
)

const keySeparator = "\x00"
