package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ArtemYurchenko333/NatalBot/internal/domain"
	"github.com/ArtemYurchenko333/NatalBot/internal/observability"
)

// Generator produces text for a prompt. A single call, no internal retries;
// any failure is terminal for the current conversation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReadingWriter persists a completed reading. Called at most once per
// conversation, and only after a successful generation.
type ReadingWriter interface {
	SaveReading(ctx context.Context, r domain.Reading) error
}

// Replier delivers a text reply to a user. Implemented by the transport.
type Replier interface {
	Reply(ctx context.Context, userID int64, text string) error
}

// SessionStore is keyed in-flight conversation state, one session per user.
type SessionStore interface {
	Get(userID int64) (domain.Session, bool)
	Put(sess domain.Session)
	Delete(userID int64)
}

// Engine drives the intake state machine. Transitions themselves live in
// Transition; the engine adds per-user serialization, session storage, the
// generation call and the best-effort reading persist.
type Engine struct {
	gen      Generator
	readings ReadingWriter
	sessions SessionStore
	replier  Replier
	logger   *slog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewEngine creates an Engine. All dependencies are required.
func NewEngine(gen Generator, readings ReadingWriter, sessions SessionStore, replier Replier, logger *slog.Logger) (*Engine, error) {
	if gen == nil {
		return nil, errors.New("usecase: generator must not be nil")
	}
	if readings == nil {
		return nil, errors.New("usecase: reading writer must not be nil")
	}
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if replier == nil {
		return nil, errors.New("usecase: replier must not be nil")
	}
	if logger == nil {
		return nil, errors.New("usecase: logger must not be nil")
	}
	return &Engine{
		gen:      gen,
		readings: readings,
		sessions: sessions,
		replier:  replier,
		logger:   logger,
		locks:    make(map[int64]*sync.Mutex),
	}, nil
}

// HandleTrigger processes one inbound event for one user. Safe for
// concurrent use across users; events from the same user are serialized for
// the whole turn, including the generation and store calls, so two messages
// can never interleave reads and writes of the same session.
func (e *Engine) HandleTrigger(ctx context.Context, userID int64, tr Trigger) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var sess *domain.Session
	if s, ok := e.sessions.Get(userID); ok {
		sess = &s
		ctx = observability.WithConversationID(ctx, s.ConversationID)
	}

	out := Transition(sess, userID, tr)

	// The session advances before any effect runs, so a generation failure
	// can never leave a half-updated session behind.
	if out.Next != nil {
		e.sessions.Put(*out.Next)
		ctx = observability.WithConversationID(ctx, out.Next.ConversationID)
	} else {
		e.sessions.Delete(userID)
	}

	for _, ef := range out.Effects {
		switch ef.Kind {
		case EffectReply:
			e.reply(ctx, userID, ef.Text)
		case EffectGenerate:
			e.generateAndPersist(ctx, userID, ef.BirthDate, ef.BirthCity)
		}
	}
}

// generateAndPersist runs the terminal step of a conversation: one
// generation call, the user-facing reply, then the best-effort persist. The
// reply is deliberately sent before the store write; a storage failure is
// logged and never reaches the user.
func (e *Engine) generateAndPersist(ctx context.Context, userID int64, birthDate, birthCity string) {
	log := e.log(ctx).With("user_id", userID)

	text, err := e.gen.Generate(ctx, buildPrompt(birthDate, birthCity))
	if err != nil {
		log.Error("generation failed", "err", err)
		e.reply(ctx, userID, replyGenerationFailed)
		return
	}

	e.reply(ctx, userID, text)

	if err := e.readings.SaveReading(ctx, domain.Reading{
		UserID:        userID,
		BirthDate:     birthDate,
		BirthCity:     birthCity,
		GeneratedText: text,
	}); err != nil {
		log.Error("saving reading failed", "err", err)
	}
}

func (e *Engine) reply(ctx context.Context, userID int64, text string) {
	if err := e.replier.Reply(ctx, userID, text); err != nil {
		e.log(ctx).Error("sending reply failed", "user_id", userID, "err", err)
	}
}

func (e *Engine) log(ctx context.Context) *slog.Logger {
	if id := observability.ConversationID(ctx); id != "" {
		return e.logger.With("conversation_id", id)
	}
	return e.logger
}

// userLock returns the mutex serializing turns for one user. Locks are kept
// for the process lifetime; the per-user footprint is a single mutex.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}
