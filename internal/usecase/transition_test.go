package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArtemYurchenko333/NatalBot/internal/domain"
)

func stubConversationIDs(t *testing.T, id string) {
	t.Helper()
	orig := newConversationID
	newConversationID = func() string { return id }
	t.Cleanup(func() { newConversationID = orig })
}

func TestTransition_StartCreatesSession(t *testing.T) {
	stubConversationIDs(t, "conv-1")

	out := Transition(nil, 42, start())
	require.NotNil(t, out.Next)
	require.Equal(t, domain.Session{
		UserID:         42,
		State:          domain.StateAwaitingDate,
		ConversationID: "conv-1",
	}, *out.Next)
	require.Equal(t, []Effect{reply(replyWelcome)}, out.Effects)
}

func TestTransition_StartOverwritesSession(t *testing.T) {
	stubConversationIDs(t, "conv-2")
	prior := &domain.Session{UserID: 42, State: domain.StateAwaitingCity, BirthDate: "15.03.1990"}

	out := Transition(prior, 42, start())
	require.NotNil(t, out.Next)
	require.Equal(t, domain.StateAwaitingDate, out.Next.State)
	require.Empty(t, out.Next.BirthDate)
}

func TestTransition_DateCapturedVerbatim(t *testing.T) {
	sess := &domain.Session{UserID: 1, State: domain.StateAwaitingDate, ConversationID: "c"}

	out := Transition(sess, 1, text("not a date at all"))
	require.NotNil(t, out.Next)
	require.Equal(t, domain.StateAwaitingCity, out.Next.State)
	require.Equal(t, "not a date at all", out.Next.BirthDate)
	require.Equal(t, "c", out.Next.ConversationID)
	require.Equal(t, []Effect{reply(replyAskCity)}, out.Effects)

	// input session must not be mutated
	require.Equal(t, domain.StateAwaitingDate, sess.State)
	require.Empty(t, sess.BirthDate)
}

func TestTransition_CityTriggersGeneration(t *testing.T) {
	sess := &domain.Session{UserID: 1, State: domain.StateAwaitingCity, BirthDate: "15.03.1990"}

	out := Transition(sess, 1, text("Paris"))
	require.Nil(t, out.Next, "terminal transition must destroy the session")
	require.Equal(t, []Effect{
		reply(replyGenerating),
		{Kind: EffectGenerate, BirthDate: "15.03.1990", BirthCity: "Paris"},
	}, out.Effects)
}

func TestTransition_MissingDateFailsSafe(t *testing.T) {
	// should not occur through the linear flow; must cancel, not generate
	sess := &domain.Session{UserID: 1, State: domain.StateAwaitingCity}

	out := Transition(sess, 1, text("Paris"))
	require.Nil(t, out.Next)
	require.Equal(t, []Effect{reply(replyCancelled)}, out.Effects)
}

func TestTransition_CancelWithoutSession(t *testing.T) {
	out := Transition(nil, 1, cancel())
	require.Nil(t, out.Next)
	require.Equal(t, []Effect{reply(replyUnknownCommand)}, out.Effects)
}

func TestTransition_UnknownCommandKeepsSession(t *testing.T) {
	sess := &domain.Session{UserID: 1, State: domain.StateAwaitingCity, BirthDate: "d"}

	out := Transition(sess, 1, command("/help"))
	require.Same(t, sess, out.Next)
	require.Equal(t, []Effect{reply(replyUnknownCommand)}, out.Effects)
}

func TestTransition_TextWithoutSession(t *testing.T) {
	out := Transition(nil, 1, text("hello"))
	require.Nil(t, out.Next)
	require.Equal(t, []Effect{reply(replyNoSession)}, out.Effects)
}
