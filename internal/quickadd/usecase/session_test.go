package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
)

func TestSession_ConfirmRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)

	sess, err := uc.NewSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	first, err := uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "webinar on go", Now: wednesday, Seq: 1})
	require.NoError(t, err)
	require.Len(t, first.Suggestions, 1)
	s := first.Suggestions[0]
	assert.Equal(t, model.SuggestionKey{Type: model.SuggestionTypeType, Value: "event"}, s.Key())
	assert.Equal(t, model.ConfidenceMedium, s.Confidence)

	confirmed, err := uc.SessionConfirm(ctx, quickadd.SessionConfirmInput{SessionID: sess.ID, Suggestion: s})
	require.NoError(t, err)
	assert.Empty(t, confirmed.Suggestions)

	// Exactly one field changed.
	want := first.ParsedInput.Clone()
	want.Type = model.ItemTypeEvent
	assert.Equal(t, want, confirmed.ParsedInput)

	// Re-parsing the same text keeps the confirmation and does not resurrect the suggestion.
	again, err := uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "webinar on go", Now: wednesday, Seq: 2})
	require.NoError(t, err)
	assert.Empty(t, again.Suggestions)
	assert.Equal(t, model.ItemTypeEvent, again.ParsedInput.Type)
}

func TestSession_StaleInputIsDropped(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)

	sess, err := uc.NewSession(ctx)
	require.NoError(t, err)

	_, err = uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "buy milk tomorrow", Seq: 5})
	require.NoError(t, err)

	_, err = uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "buy mil", Seq: 3})
	assert.ErrorIs(t, err, quickadd.ErrStaleInput)

	// Without a sequence number the input is taken as the newest.
	out, err := uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "buy milk today"})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", out.Title)

	snap, ok := uc.sessions.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, int64(6), snap.seq)
	assert.Equal(t, "buy milk today", snap.text)
}

func TestSession_Toggle(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)

	sess, err := uc.NewSession(ctx)
	require.NoError(t, err)
	_, err = uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "stretch at 5pm", Now: wednesday})
	require.NoError(t, err)

	p, err := uc.SessionToggle(ctx, quickadd.SessionToggleInput{SessionID: sess.ID, Field: quickadd.FieldType})
	require.NoError(t, err)
	assert.Equal(t, model.ItemTypeEvent, p.Type)
	require.NotNil(t, p.StartTime)
	assert.Equal(t, at(5, 1, 17, 0), *p.StartTime)
	assert.Equal(t, at(5, 1, 18, 0), *p.EndTime)

	_, err = uc.SessionToggle(ctx, quickadd.SessionToggleInput{SessionID: sess.ID, Field: "colour"})
	assert.ErrorIs(t, err, quickadd.ErrUnknownField)
}

func TestSession_NotFound(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)

	_, err := uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: "missing", Text: "x"})
	assert.ErrorIs(t, err, quickadd.ErrSessionNotFound)

	_, err = uc.SessionConfirm(ctx, quickadd.SessionConfirmInput{
		SessionID:  "missing",
		Suggestion: model.SmartSuggestion{Type: model.SuggestionTypeType, Value: "event"},
	})
	assert.ErrorIs(t, err, quickadd.ErrSessionNotFound)

	_, err = uc.SessionToggle(ctx, quickadd.SessionToggleInput{SessionID: "missing", Field: quickadd.FieldPrivacy})
	assert.ErrorIs(t, err, quickadd.ErrSessionNotFound)
}

func TestSession_Expires(t *testing.T) {
	ctx := context.Background()
	l := &mockLogger{}
	base := newTestUseCase(t, nil, nil)
	uc := New(base.detector, base.extractor, base.categories, Config{SessionTTL: 20 * time.Millisecond}, l)

	sess, err := uc.NewSession(ctx)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = uc.SessionParse(ctx, quickadd.SessionParseInput{SessionID: sess.ID, Text: "buy milk"})
	assert.ErrorIs(t, err, quickadd.ErrSessionNotFound)
}
