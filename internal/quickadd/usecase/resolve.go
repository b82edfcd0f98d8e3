package usecase

import (
	"context"
	"time"

	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
)

// ConfirmSuggestion merges s into current. Categories are added when absent;
// type, priority and privacy are overwritten. Unknown suggestions change nothing.
func ConfirmSuggestion(current model.ParsedInput, s model.SmartSuggestion) model.ParsedInput {
	return confirmSuggestion(current, s, DefaultEventDuration)
}

// ToggleField flips a boolean field, cycles an enum field, or adds/removes a
// category. Unknown fields change nothing.
func ToggleField(current model.ParsedInput, field quickadd.Field, categoryID string) model.ParsedInput {
	return toggleField(current, field, categoryID, DefaultEventDuration)
}

// RemoveSuggestion drops every suggestion with the same (type, value) as s.
func RemoveSuggestion(list []model.SmartSuggestion, s model.SmartSuggestion) []model.SmartSuggestion {
	out := make([]model.SmartSuggestion, 0, len(list))
	for _, e := range list {
		if e.Key() != s.Key() {
			out = append(out, e)
		}
	}
	return out
}

// Confirm applies a suggestion to the caller-held ParsedInput.
func (uc *implUseCase) Confirm(ctx context.Context, input quickadd.ConfirmInput) (quickadd.ConfirmOutput, error) {
	if !validSuggestion(input.Suggestion) {
		return quickadd.ConfirmOutput{}, quickadd.ErrInvalidSuggestion
	}

	return quickadd.ConfirmOutput{
		ParsedInput: uc.confirm(input.Current, input.Suggestion),
		Suggestions: RemoveSuggestion(input.Suggestions, input.Suggestion),
	}, nil
}

// Toggle applies a badge tap to the caller-held ParsedInput.
func (uc *implUseCase) Toggle(ctx context.Context, input quickadd.ToggleInput) (model.ParsedInput, error) {
	if !input.Field.Valid() {
		return input.Current, quickadd.ErrUnknownField
	}
	return toggleField(input.Current, input.Field, input.CategoryID, uc.cfg.EventDuration), nil
}

func (uc *implUseCase) confirm(current model.ParsedInput, s model.SmartSuggestion) model.ParsedInput {
	return confirmSuggestion(current, s, uc.cfg.EventDuration)
}

func confirmSuggestion(current model.ParsedInput, s model.SmartSuggestion, eventDuration time.Duration) model.ParsedInput {
	out := current.Clone()

	switch s.Type {
	case model.SuggestionTypeType:
		if t := model.ItemType(s.Value); t.Valid() {
			reshape(&out, t, eventDuration)
		}
	case model.SuggestionTypePriority:
		if p := model.Priority(s.Value); p.Valid() {
			out.Priority = p
		}
	case model.SuggestionTypePrivacy:
		switch s.Value {
		case model.PrivacyPublic:
			out.IsPublic = true
		case model.PrivacyPrivate:
			out.IsPublic = false
		}
	case model.SuggestionTypeCategory:
		if s.Value != "" && !out.HasCategory(s.Value) {
			out.Categories = append(out.Categories, s.Value)
		}
	}
	return out
}

func toggleField(current model.ParsedInput, field quickadd.Field, categoryID string, eventDuration time.Duration) model.ParsedInput {
	out := current.Clone()

	switch field {
	case quickadd.FieldPrivacy:
		out.IsPublic = !out.IsPublic
	case quickadd.FieldAllDay:
		out.AllDay = !out.AllDay
	case quickadd.FieldPriority:
		out.Priority = out.Priority.Next()
	case quickadd.FieldType:
		next := model.ItemTypeEvent
		if out.Type == model.ItemTypeEvent {
			next = model.ItemTypeReminder
		}
		reshape(&out, next, eventDuration)
	case quickadd.FieldCategory:
		if categoryID == "" {
			break
		}
		if out.HasCategory(categoryID) {
			out.Categories = removeString(out.Categories, categoryID)
		} else {
			out.Categories = append(out.Categories, categoryID)
		}
	}
	return out
}

// reshape switches the item type and moves the schedule onto the fields that type uses.
func reshape(p *model.ParsedInput, to model.ItemType, eventDuration time.Duration) {
	if p.Type == to {
		return
	}
	p.Type = to

	switch to {
	case model.ItemTypeEvent:
		if p.Time != nil {
			start := *p.Time
			end := start.Add(eventDuration)
			if p.RangeEnd != nil && p.RangeEnd.After(start) {
				end = *p.RangeEnd
			}
			p.StartTime = &start
			p.EndTime = &end
			p.Time = nil
		}
		p.RangeEnd = nil
	case model.ItemTypeReminder:
		if p.StartTime != nil {
			t := *p.StartTime
			p.Time = &t
			p.RangeEnd = p.EndTime
			p.StartTime = nil
			p.EndTime = nil
		}
	}
}

func removeString(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		if e != s {
			out = append(out, e)
		}
	}
	return out
}
