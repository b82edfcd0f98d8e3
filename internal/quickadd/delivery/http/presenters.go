package http

import (
	"time"

	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
	"smart-quick-add/pkg/response"
)

// --- Request DTOs ---

type suggestionReq struct {
	Type       string `json:"type"  binding:"required"`
	Value      string `json:"value" binding:"required"`
	Label      string `json:"label"`
	Confidence string `json:"confidence"`
}

func (r suggestionReq) toModel() model.SmartSuggestion {
	return model.SmartSuggestion{
		Type:       model.SuggestionType(r.Type),
		Value:      r.Value,
		Label:      r.Label,
		Confidence: model.Confidence(r.Confidence),
	}
}

func toSuggestions(reqs []suggestionReq) []model.SmartSuggestion {
	out := make([]model.SmartSuggestion, len(reqs))
	for i, r := range reqs {
		out[i] = r.toModel()
	}
	return out
}

// ---

type parseReq struct {
	Text       string                     `json:"text"`
	Now        string                     `json:"now"`
	Categories []model.CategoryDefinition `json:"categories"`
	Confirmed  []model.SuggestionKey      `json:"confirmed"`
}

func (r parseReq) validate() error {
	_, err := parseNow(r.Now)
	return err
}

func (r parseReq) toInput() quickadd.ParseInput {
	now, _ := parseNow(r.Now)
	confirmed := model.ConfirmedSet{}
	for _, k := range r.Confirmed {
		confirmed.Add(k)
	}
	return quickadd.ParseInput{
		Text:       r.Text,
		Now:        now,
		Categories: r.Categories,
		Confirmed:  confirmed,
	}
}

// ---

type confirmReq struct {
	Current     model.ParsedInput `json:"current"`
	Suggestion  suggestionReq     `json:"suggestion"`
	Suggestions []suggestionReq   `json:"suggestions"`
}

func (r confirmReq) validate() error { return validateItem(r.Current) }

func (r confirmReq) toInput() quickadd.ConfirmInput {
	return quickadd.ConfirmInput{
		Current:     r.Current,
		Suggestion:  r.Suggestion.toModel(),
		Suggestions: toSuggestions(r.Suggestions),
	}
}

// ---

type toggleReq struct {
	Current    model.ParsedInput `json:"current"`
	Field      string            `json:"field" binding:"required"`
	CategoryID string            `json:"category_id"`
}

func (r toggleReq) validate() error { return validateItem(r.Current) }

func (r toggleReq) toInput() quickadd.ToggleInput {
	return quickadd.ToggleInput{
		Current:    r.Current,
		Field:      quickadd.Field(r.Field),
		CategoryID: r.CategoryID,
	}
}

// ---

type icsReq struct {
	Items []model.ParsedInput `json:"items" binding:"required,min=1"`
}

func (r icsReq) validate() error {
	for _, item := range r.Items {
		if err := validateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// ---

type sessionParseReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text"`
	Now       string `json:"now"`
	Seq       int64  `json:"seq" binding:"min=0"`
}

func (r sessionParseReq) validate() error {
	_, err := parseNow(r.Now)
	return err
}

func (r sessionParseReq) toInput() quickadd.SessionParseInput {
	now, _ := parseNow(r.Now)
	return quickadd.SessionParseInput{
		SessionID: r.SessionID,
		Text:      r.Text,
		Now:       now,
		Seq:       r.Seq,
	}
}

type sessionConfirmReq struct {
	SessionID  string        `json:"-"`
	Suggestion suggestionReq `json:"suggestion"`
}

func (r sessionConfirmReq) toInput() quickadd.SessionConfirmInput {
	return quickadd.SessionConfirmInput{SessionID: r.SessionID, Suggestion: r.Suggestion.toModel()}
}

type sessionToggleReq struct {
	SessionID  string `json:"-"`
	Field      string `json:"field" binding:"required"`
	CategoryID string `json:"category_id"`
}

func (r sessionToggleReq) toInput() quickadd.SessionToggleInput {
	return quickadd.SessionToggleInput{SessionID: r.SessionID, Field: quickadd.Field(r.Field), CategoryID: r.CategoryID}
}

func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidTime
	}
	return t, nil
}

func validateItem(p model.ParsedInput) error {
	if !p.Type.Valid() {
		return errInvalidItem
	}
	if !p.Priority.Valid() {
		return errInvalidItem
	}
	return nil
}

// --- Response DTOs ---

type itemResp struct {
	Title      string             `json:"title"`
	Type       model.ItemType     `json:"type"`
	Priority   model.Priority     `json:"priority"`
	Categories []string           `json:"categories"`
	Time       *response.DateTime `json:"time,omitempty"`
	StartTime  *response.DateTime `json:"start_time,omitempty"`
	EndTime    *response.DateTime `json:"end_time,omitempty"`
	RangeEnd   *response.DateTime `json:"range_end,omitempty"`
	AllDay     bool               `json:"all_day"`
	IsPublic   bool               `json:"is_public"`
}

func newItemResp(p model.ParsedInput) itemResp {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return itemResp{
		Title:      p.Title,
		Type:       p.Type,
		Priority:   p.Priority,
		Categories: categories,
		Time:       response.NewDateTime(p.Time),
		StartTime:  response.NewDateTime(p.StartTime),
		EndTime:    response.NewDateTime(p.EndTime),
		RangeEnd:   response.NewDateTime(p.RangeEnd),
		AllDay:     p.AllDay,
		IsPublic:   p.IsPublic,
	}
}

func newSuggestionsResp(list []model.SmartSuggestion) []model.SmartSuggestion {
	if list == nil {
		return []model.SmartSuggestion{}
	}
	return list
}

type parseResp struct {
	Item        itemResp                `json:"item"`
	Suggestions []model.SmartSuggestion `json:"suggestions"`
	Title       string                  `json:"title"`
	Detections  quickadd.Detections     `json:"detections"`
}

func (h *handler) newParseResp(out quickadd.ParseOutput) parseResp {
	return parseResp{
		Item:        newItemResp(out.ParsedInput),
		Suggestions: newSuggestionsResp(out.Suggestions),
		Title:       out.Title,
		Detections:  out.Detections,
	}
}

type confirmResp struct {
	Item        itemResp                `json:"item"`
	Suggestions []model.SmartSuggestion `json:"suggestions"`
}

func (h *handler) newConfirmResp(out quickadd.ConfirmOutput) confirmResp {
	return confirmResp{
		Item:        newItemResp(out.ParsedInput),
		Suggestions: newSuggestionsResp(out.Suggestions),
	}
}

type toggleResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newToggleResp(p model.ParsedInput) toggleResp {
	return toggleResp{Item: newItemResp(p)}
}

type sessionResp struct {
	ID        string             `json:"id"`
	Seq       int64              `json:"seq"`
	ExpiresAt *response.DateTime `json:"expires_at"`
	Item      itemResp           `json:"item"`
}

func (h *handler) newSessionResp(s quickadd.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		Seq:       s.Seq,
		ExpiresAt: response.NewDateTime(&s.ExpiresAt),
		Item:      newItemResp(s.Output.ParsedInput),
	}
}

type categoriesResp struct {
	Categories []model.CategoryDefinition `json:"categories"`
}

func (h *handler) newCategoriesResp(list []model.CategoryDefinition) categoriesResp {
	if list == nil {
		list = []model.CategoryDefinition{}
	}
	return categoriesResp{Categories: list}
}
