package detector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/internal/detector"
	"smart-quick-add/internal/model"
	"smart-quick-add/pkg/log"
)

func TestFirstMatch_TableOrderWins(t *testing.T) {
	rules := []detector.Rule[string]{
		{Value: "first", Confidence: model.ConfidenceLow, Keywords: []string{"zebra"}},
		{Value: "second", Confidence: model.ConfidenceHigh, Keywords: []string{"apple"}},
	}

	d, ok := detector.FirstMatch("apple before ZEBRA", rules)
	require.True(t, ok)
	assert.Equal(t, "first", d.Value)
	assert.Equal(t, model.ConfidenceLow, d.Confidence)
	assert.Equal(t, []string{"zebra"}, d.Evidence)

	_, ok = detector.FirstMatch("nothing here", rules)
	assert.False(t, ok)
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOK     bool
		want       model.ItemType
		confidence model.Confidence
		evidence   string
	}{
		{name: "event marker", text: "/event buy milk", wantOK: true, want: model.ItemTypeEvent, confidence: model.ConfidenceHigh, evidence: "/event"},
		{name: "reminder marker beats event keyword", text: "dinner plans /Reminder", wantOK: true, want: model.ItemTypeReminder, confidence: model.ConfidenceHigh, evidence: "/Reminder"},
		{name: "reminder keyword beats event keyword", text: "call the bank and remind me", wantOK: true, want: model.ItemTypeReminder, confidence: model.ConfidenceHigh, evidence: "remind"},
		{name: "medium tier reminder coerced to high", text: "review slides before the meeting", wantOK: true, want: model.ItemTypeReminder, confidence: model.ConfidenceHigh, evidence: "review"},
		{name: "low tier reminder coerced to high", text: "need to book flights", wantOK: true, want: model.ItemTypeReminder, confidence: model.ConfidenceHigh, evidence: "need to"},
		{name: "high tier event", text: "Team Meeting", wantOK: true, want: model.ItemTypeEvent, confidence: model.ConfidenceHigh, evidence: "meeting"},
		{name: "medium tier event", text: "webinar on go", wantOK: true, want: model.ItemTypeEvent, confidence: model.ConfidenceMedium, evidence: "webinar"},
		{name: "low tier event", text: "coffee with ana", wantOK: true, want: model.ItemTypeEvent, confidence: model.ConfidenceLow, evidence: "with"},
		{name: "no signal", text: "buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := detector.DetectType(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, d.Value)
			assert.Equal(t, tt.confidence, d.Confidence)
			assert.Equal(t, []string{tt.evidence}, d.Evidence)
		})
	}
}

func TestDetectPriority(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOK     bool
		want       model.Priority
		confidence model.Confidence
		evidence   string
	}{
		{name: "marker wins", text: "!low urgent fix", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "!low"},
		{name: "not urgent", text: "not urgent cleanup", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "not urgent"},
		{name: "not important", text: "Not important: tidy desk", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "Not important"},
		{name: "negation with words between", text: "this is not very important", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "not very important"},
		{name: "not now", text: "not now, clean garage", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "not now"},
		{name: "no rush", text: "No rush on the report", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "No rush"},
		{name: "non-essential", text: "non-essential errands", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "non-essential"},
		{name: "non-critical", text: "non-critical patch", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "non-critical"},
		{name: "urgent", text: "Urgent fix", wantOK: true, want: model.PriorityUrgent, confidence: model.ConfidenceHigh, evidence: "urgent"},
		{name: "urgent tier before high tier", text: "very important deck", wantOK: true, want: model.PriorityUrgent, confidence: model.ConfidenceMedium, evidence: "very important"},
		{name: "high tier", text: "important email", wantOK: true, want: model.PriorityHigh, confidence: model.ConfidenceHigh, evidence: "important"},
		{name: "high tier medium", text: "do it soon", wantOK: true, want: model.PriorityHigh, confidence: model.ConfidenceMedium, evidence: "soon"},
		{name: "low tier", text: "maybe paint the fence", wantOK: true, want: model.PriorityLow, confidence: model.ConfidenceHigh, evidence: "maybe"},
		{name: "no signal", text: "buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := detector.DetectPriority(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, d.Value)
			assert.Equal(t, tt.confidence, d.Confidence)
			assert.Equal(t, []string{tt.evidence}, d.Evidence)
		})
	}
}

func TestDetectPriority_NegationNeverMatchesPositiveLists(t *testing.T) {
	for _, text := range []string{"not urgent", "not important", "NOT URGENT at all", "no priority task", "not now", "not asap", "no emergency here", "not that crucial"} {
		d, ok := detector.DetectPriority(text)
		require.True(t, ok, text)
		assert.Equal(t, model.PriorityLow, d.Value, text)
		assert.Equal(t, model.ConfidenceHigh, d.Confidence, text)
	}
}

func TestDetectVisibility(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOK     bool
		public     bool
		confidence model.Confidence
	}{
		{name: "team is public", text: "team sync", wantOK: true, public: true, confidence: model.ConfidenceHigh},
		{name: "public before private", text: "private notes shared later", wantOK: true, public: true, confidence: model.ConfidenceHigh},
		{name: "private", text: "private journal", wantOK: true, public: false, confidence: model.ConfidenceHigh},
		{name: "medium private", text: "solo run", wantOK: true, public: false, confidence: model.ConfidenceMedium},
		{name: "low public", text: "announce results", wantOK: true, public: true, confidence: model.ConfidenceLow},
		{name: "no signal", text: "buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := detector.DetectVisibility(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.public, d.Value)
			assert.Equal(t, tt.confidence, d.Confidence)
		})
	}
}

type stubTagger struct {
	nouns []string
}

func (s stubTagger) Nouns(string) []string { return s.nouns }

type panickingTagger struct{}

func (panickingTagger) Nouns(string) []string { panic("tagger down") }

var categories = []model.CategoryDefinition{
	{ID: "work", Name: "Work", Keywords: []string{"work", "office"}},
	{ID: "home", Name: "Home Chores"},
	{ID: "gym", Name: "Fitness", Keywords: []string{"gym", "run"}},
}

func TestDetectCategories(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tagger detector.NounTagger
		want   []model.Detection[string]
	}{
		{
			name: "hashtag", text: "#work dinner with Sam",
			want: []model.Detection[string]{{Value: "work", Confidence: model.ConfidenceHigh, Evidence: []string{"#work"}}},
		},
		{
			name: "hashtag is exact, not substring", text: "#workshop signup",
		},
		{
			name: "fallback keywords from name", text: "clean home today",
			want: []model.Detection[string]{{Value: "home", Confidence: model.ConfidenceHigh, Evidence: []string{"home"}}},
		},
		{
			name: "hashtag on name plus keyword match", text: "#Fitness then office stuff",
			want: []model.Detection[string]{
				{Value: "gym", Confidence: model.ConfidenceHigh, Evidence: []string{"#Fitness"}},
				{Value: "work", Confidence: model.ConfidenceHigh, Evidence: []string{"office"}},
			},
		},
		{
			name: "name and keyword collapse into one detection", text: "work from the office",
			want: []model.Detection[string]{{Value: "work", Confidence: model.ConfidenceHigh, Evidence: []string{"Work", "office"}}},
		},
		{
			name: "keyword inside a noun is medium", text: "sign up for workshop", tagger: stubTagger{nouns: []string{"workshop"}},
			want: []model.Detection[string]{{Value: "work", Confidence: model.ConfidenceMedium, Evidence: []string{"work"}}},
		},
		{
			name: "whole word beats a noun match", text: "finish work before the workshop", tagger: stubTagger{nouns: []string{"workshop"}},
			want: []model.Detection[string]{{Value: "work", Confidence: model.ConfidenceHigh, Evidence: []string{"Work"}}},
		},
		{
			name: "panicking tagger means no noun matches", text: "sign up for workshop", tagger: panickingTagger{},
		},
		{
			name: "no signal", text: "buy milk", tagger: stubTagger{nouns: []string{"milk"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := detector.New(tt.tagger, log.NewNop())
			got := d.DetectCategories(context.Background(), tt.text, categories)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectAll(t *testing.T) {
	d := detector.New(nil, log.NewNop())

	r := d.DetectAll(context.Background(), "Urgent team meeting tomorrow afternoon", categories)

	require.NotNil(t, r.Type)
	assert.Equal(t, model.ItemTypeEvent, r.Type.Value)
	assert.Equal(t, model.ConfidenceHigh, r.Type.Confidence)

	require.NotNil(t, r.Priority)
	assert.Equal(t, model.PriorityUrgent, r.Priority.Value)
	assert.Equal(t, model.ConfidenceHigh, r.Priority.Confidence)

	require.NotNil(t, r.Visibility)
	assert.True(t, r.Visibility.Value)

	assert.Empty(t, r.Categories)
}

func TestDetectAll_NoSignals(t *testing.T) {
	d := detector.New(nil, log.NewNop())

	r := d.DetectAll(context.Background(), "buy milk", categories)
	assert.Nil(t, r.Type)
	assert.Nil(t, r.Priority)
	assert.Nil(t, r.Visibility)
	assert.Empty(t, r.Categories)
}
