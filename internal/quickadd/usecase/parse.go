package usecase

import (
	"context"
	"strings"
	"time"

	"smart-quick-add/internal/cleaner"
	"smart-quick-add/internal/datetime"
	"smart-quick-add/internal/detector"
	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
)

// Parse runs every detector and the date extractor over the text and merges
// the results. High confidence detections are applied; the rest become suggestions.
func (uc *implUseCase) Parse(ctx context.Context, input quickadd.ParseInput) (quickadd.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return quickadd.ParseOutput{}, quickadd.ErrEmptyInput
	}

	categories := input.Categories
	if categories == nil {
		var err error
		categories, err = uc.categories.List(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Parse categories.List: %v", err)
			return quickadd.ParseOutput{}, err
		}
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	out := uc.parse(ctx, input.Text, now, categories, input.Confirmed)
	uc.l.Debugf(ctx, "uc.Parse: type=%s priority=%s categories=%v suggestions=%d title=%q",
		out.ParsedInput.Type, out.ParsedInput.Priority, out.ParsedInput.Categories, len(out.Suggestions), out.Title)
	return out, nil
}

func (uc *implUseCase) parse(
	ctx context.Context,
	text string,
	now time.Time,
	categories []model.CategoryDefinition,
	confirmed model.ConfirmedSet,
) quickadd.ParseOutput {
	res := uc.detect(ctx, text, categories)
	span, hasDate := uc.extractor.Extract(ctx, text, now)

	p := model.NewParsedInput()
	var (
		suggestions []model.SmartSuggestion
		consumed    []string
		// Priority evidence and markers are removed even in the fallback title.
		essential []string
	)

	if d := res.Type; d != nil {
		if d.Confidence.IsHigh() {
			p.Type = d.Value
			consumed = append(consumed, d.Evidence...)
		} else {
			suggestions = append(suggestions, suggestion(model.SuggestionTypeType, string(d.Value), label(string(d.Value)), d.Confidence))
		}
	}

	if d := res.Priority; d != nil {
		if d.Confidence.IsHigh() {
			p.Priority = d.Value
			consumed = append(consumed, d.Evidence...)
			essential = append(essential, d.Evidence...)
		} else {
			suggestions = append(suggestions, suggestion(model.SuggestionTypePriority, string(d.Value), label(string(d.Value)), d.Confidence))
		}
	}

	if d := res.Visibility; d != nil {
		if d.Confidence.IsHigh() {
			p.IsPublic = d.Value
			consumed = append(consumed, d.Evidence...)
		} else {
			v := privacyValue(d.Value)
			suggestions = append(suggestions, suggestion(model.SuggestionTypePrivacy, v, label(v), d.Confidence))
		}
	}

	names := categoryNames(categories)
	for _, d := range res.Categories {
		if d.Confidence.IsHigh() && !p.HasCategory(d.Value) {
			p.Categories = append(p.Categories, d.Value)
			consumed = append(consumed, d.Evidence...)
		}
	}
	for _, d := range res.Categories {
		if d.Confidence.IsHigh() || p.HasCategory(d.Value) {
			continue
		}
		suggestions = append(suggestions, suggestion(model.SuggestionTypeCategory, d.Value, names[d.Value], d.Confidence))
	}

	var dateTexts []string
	if hasDate {
		dateTexts = span.Texts
		uc.applySpan(&p, span)
	}

	// Confirmed suggestions stay applied across re-parses and are not offered again.
	active := make([]model.SmartSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if confirmed.Has(s.Key()) {
			p = uc.confirm(p, s)
			continue
		}
		active = append(active, s)
	}

	p.Title = cleaner.Clean(text, consumed, dateTexts)
	if p.Title == model.DefaultTitle {
		if fallback := cleaner.Clean(text, essential, dateTexts); fallback != model.DefaultTitle {
			p.Title = fallback
		}
	}

	out := quickadd.ParseOutput{
		ParsedInput: p,
		Suggestions: active,
		Title:       p.Title,
		Detections: quickadd.Detections{
			Type:       res.Type,
			Priority:   res.Priority,
			Visibility: res.Visibility,
			Categories: res.Categories,
		},
	}
	if hasDate {
		out.Detections.Date = &quickadd.DateDetection{Texts: span.Texts, Confidence: span.Confidence}
	}
	return out
}

// detect runs the detectors; a panic in any of them costs only the detections, not the parse.
func (uc *implUseCase) detect(ctx context.Context, text string, categories []model.CategoryDefinition) (res detector.Result) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "uc.detect: detector panicked: %v", r)
			res = detector.Result{}
		}
	}()
	return uc.detector.DetectAll(ctx, text, categories)
}

// applySpan writes the extracted date onto the fields the item type uses.
func (uc *implUseCase) applySpan(p *model.ParsedInput, span datetime.Span) {
	start := span.Instant()
	p.AllDay = span.AllDay

	if p.Type == model.ItemTypeEvent {
		end := start.Add(uc.cfg.EventDuration)
		if span.End != nil {
			end = *span.End
		}
		p.StartTime = &start
		p.EndTime = &end
		p.Time = nil
		p.RangeEnd = nil
		return
	}

	p.Time = &start
	p.StartTime = nil
	p.EndTime = nil
	p.RangeEnd = nil
	if span.End != nil {
		end := *span.End
		p.RangeEnd = &end
	}
}

func categoryNames(categories []model.CategoryDefinition) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
