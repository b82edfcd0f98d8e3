package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
)

// session is the server-side state of one compose box: the latest parse plus
// the suggestions confirmed since the box was opened.
type session struct {
	mu        sync.Mutex
	id        string
	seq       int64
	text      string
	confirmed model.ConfirmedSet
	output    quickadd.ParseOutput
	expiresAt time.Time
}

func (s *session) snapshot() quickadd.Session {
	return quickadd.Session{
		ID:        s.id,
		Seq:       s.seq,
		Text:      s.text,
		Confirmed: s.confirmed.Keys(),
		Output:    s.output,
		ExpiresAt: s.expiresAt,
	}
}

// NewSession opens an empty compose session.
func (uc *implUseCase) NewSession(ctx context.Context) (quickadd.Session, error) {
	p := model.NewParsedInput()
	s := &session{
		id:        uuid.NewString(),
		confirmed: model.ConfirmedSet{},
		output: quickadd.ParseOutput{
			ParsedInput: p,
			Suggestions: []model.SmartSuggestion{},
			Title:       p.Title,
		},
	}
	uc.touch(s)

	uc.l.Debugf(ctx, "uc.NewSession: id=%s", s.id)
	return s.snapshot(), nil
}

// SessionParse re-parses the session text from scratch, keeping confirmed
// suggestions applied. An input older than the last accepted one is rejected.
func (uc *implUseCase) SessionParse(ctx context.Context, input quickadd.SessionParseInput) (quickadd.ParseOutput, error) {
	s, err := uc.session(input.SessionID)
	if err != nil {
		return quickadd.ParseOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := input.Seq
	if seq == 0 {
		seq = s.seq + 1
	}
	if seq < s.seq {
		uc.l.Debugf(ctx, "uc.SessionParse: stale input id=%s seq=%d last=%d", s.id, seq, s.seq)
		return quickadd.ParseOutput{}, quickadd.ErrStaleInput
	}
	if strings.TrimSpace(input.Text) == "" {
		return quickadd.ParseOutput{}, quickadd.ErrEmptyInput
	}

	categories, err := uc.categories.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SessionParse categories.List: %v", err)
		return quickadd.ParseOutput{}, err
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	out := uc.parse(ctx, input.Text, now, categories, s.confirmed)
	s.seq = seq
	s.text = input.Text
	s.output = out
	uc.touch(s)

	return out, nil
}

// SessionConfirm applies a suggestion and remembers it for later re-parses.
func (uc *implUseCase) SessionConfirm(ctx context.Context, input quickadd.SessionConfirmInput) (quickadd.ConfirmOutput, error) {
	if !validSuggestion(input.Suggestion) {
		return quickadd.ConfirmOutput{}, quickadd.ErrInvalidSuggestion
	}

	s, err := uc.session(input.SessionID)
	if err != nil {
		return quickadd.ConfirmOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.output.ParsedInput = uc.confirm(s.output.ParsedInput, input.Suggestion)
	s.output.Suggestions = RemoveSuggestion(s.output.Suggestions, input.Suggestion)
	s.output.Title = s.output.ParsedInput.Title
	s.confirmed.Add(input.Suggestion.Key())
	uc.touch(s)

	return quickadd.ConfirmOutput{
		ParsedInput: s.output.ParsedInput,
		Suggestions: s.output.Suggestions,
	}, nil
}

// SessionToggle applies a badge tap to the session's current item.
func (uc *implUseCase) SessionToggle(ctx context.Context, input quickadd.SessionToggleInput) (model.ParsedInput, error) {
	if !input.Field.Valid() {
		return model.ParsedInput{}, quickadd.ErrUnknownField
	}

	s, err := uc.session(input.SessionID)
	if err != nil {
		return model.ParsedInput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.output.ParsedInput = toggleField(s.output.ParsedInput, input.Field, input.CategoryID, uc.cfg.EventDuration)
	uc.touch(s)

	return s.output.ParsedInput, nil
}

func (uc *implUseCase) session(id string) (*session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, quickadd.ErrSessionNotFound
	}
	return s, nil
}

// touch re-adds s, which restarts its TTL.
func (uc *implUseCase) touch(s *session) {
	s.expiresAt = uc.now().Add(uc.cfg.SessionTTL)
	uc.sessions.Add(s.id, s)
}
