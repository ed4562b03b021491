package domain

// State identifies where an intake conversation currently is.
type State int

const (
	// StateAwaitingDate is the initial state entered on /start: the bot is
	// waiting for the user's birth date.
	StateAwaitingDate State = iota
	// StateAwaitingCity means the birth date has been captured and the bot
	// is waiting for the birth city.
	StateAwaitingCity
)

func (s State) String() string {
	switch s {
	case StateAwaitingDate:
		return "awaiting_date"
	case StateAwaitingCity:
		return "awaiting_city"
	default:
		return "unknown"
	}
}

// Session is the ephemeral per-user conversation state kept between a /start
// and a terminal transition. It carries no externally visible side effects,
// so a fresh /start may overwrite an in-flight session at any time.
//
// Invariant: BirthDate is non-empty if and only if State == StateAwaitingCity.
type Session struct {
	UserID int64
	State  State

	// BirthDate is the raw text the user sent; it is captured as-is and
	// never parsed as a calendar date.
	BirthDate string

	// ConversationID correlates log lines from the same conversation.
	ConversationID string
}
