package usecase

import (
	"github.com/google/uuid"

	"github.com/ArtemYurchenko333/NatalBot/internal/domain"
)

// TriggerKind classifies an inbound event. The state machine only ever
// branches on the kind of a trigger, never on the content of a text message.
type TriggerKind int

const (
	// TriggerStart is the /start command.
	TriggerStart TriggerKind = iota
	// TriggerCancel is the /cancel command.
	TriggerCancel
	// TriggerText is a plain, non-command text message.
	TriggerText
	// TriggerUnknownCommand is any command other than /start and /cancel.
	TriggerUnknownCommand
)

// Trigger is one inbound event consumed by the state machine.
type Trigger struct {
	Kind TriggerKind
	Text string
}

// EffectKind classifies a side effect requested by a transition.
type EffectKind int

const (
	// EffectReply sends a text reply to the user.
	EffectReply EffectKind = iota
	// EffectGenerate runs the generation call and, on success, the
	// best-effort reading persist. Always the last effect of a turn.
	EffectGenerate
)

// Effect is one side effect the engine must perform after a transition.
type Effect struct {
	Kind EffectKind

	// Text is the reply body for EffectReply.
	Text string

	// BirthDate and BirthCity parameterize EffectGenerate.
	BirthDate string
	BirthCity string
}

// Outcome is the result of applying a trigger to a session.
type Outcome struct {
	// Next is the session to keep after this turn; nil means no session
	// survives (none existed, or the conversation reached a terminal state).
	Next *domain.Session

	// Effects are performed in order after Next has been stored.
	Effects []Effect
}

// newConversationID is a seam for tests.
var newConversationID = func() string {
	return uuid.NewString()
}

func reply(text string) Effect {
	return Effect{Kind: EffectReply, Text: text}
}

// Transition applies one trigger to the current session (nil when the user
// has none) and returns the next session plus the effects to perform. It is
// a pure function of its inputs apart from conversation ID assignment and
// performs no I/O, which keeps the whole state machine testable without a
// transport or backend.
func Transition(sess *domain.Session, userID int64, tr Trigger) Outcome {
	switch tr.Kind {
	case TriggerStart:
		// A fresh /start always wins over any in-flight session.
		return Outcome{
			Next: &domain.Session{
				UserID:         userID,
				State:          domain.StateAwaitingDate,
				ConversationID: newConversationID(),
			},
			Effects: []Effect{reply(replyWelcome)},
		}

	case TriggerCancel:
		if sess == nil {
			return Outcome{Effects: []Effect{reply(replyUnknownCommand)}}
		}
		return Outcome{Effects: []Effect{reply(replyCancelled)}}

	case TriggerUnknownCommand:
		// A stray command never tears down collected input: the session,
		// if any, is left exactly as it was.
		return Outcome{Next: sess, Effects: []Effect{reply(replyUnknownCommand)}}

	case TriggerText:
		return textTransition(sess, tr.Text)

	default:
		return Outcome{Next: sess}
	}
}

func textTransition(sess *domain.Session, text string) Outcome {
	if sess == nil {
		return Outcome{Effects: []Effect{reply(replyNoSession)}}
	}

	switch sess.State {
	case domain.StateAwaitingDate:
		next := *sess
		next.State = domain.StateAwaitingCity
		next.BirthDate = text
		return Outcome{
			Next:    &next,
			Effects: []Effect{reply(replyAskCity)},
		}

	case domain.StateAwaitingCity:
		if sess.BirthDate == "" {
			// Cannot happen through the linear flow; fail safe by
			// cancelling rather than generating from half a session.
			return Outcome{Effects: []Effect{reply(replyCancelled)}}
		}
		return Outcome{
			Effects: []Effect{
				reply(replyGenerating),
				{Kind: EffectGenerate, BirthDate: sess.BirthDate, BirthCity: text},
			},
		}

	default:
		return Outcome{Effects: []Effect{reply(replyCancelled)}}
	}
}
