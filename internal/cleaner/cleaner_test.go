package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-quick-add/internal/cleaner"
	"smart-quick-add/internal/model"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		consumed  []string
		dateTexts []string
		want      string
	}{
		{name: "no signals", input: "buy milk", want: "buy milk"},
		{name: "trims and collapses", input: "  buy   milk  ", want: "buy milk"},
		{name: "markers always stripped", input: "/event !urgent #work plan sprint", want: "plan sprint"},
		{name: "marker case", input: "ship it !HIGH /Reminder", want: "ship it"},
		{
			name: "over-deletion of a subject keyword", input: "#work dinner with Sam at 7pm",
			consumed: []string{"dinner"}, dateTexts: []string{"at 7pm"}, want: "with Sam",
		},
		{
			name: "reminder verb filler", input: "remind me to pay bills next business day",
			consumed: []string{"remind"}, dateTexts: []string{"next business day"}, want: "pay bills",
		},
		{
			name: "keyword is whole word only", input: "callback the caller",
			consumed: []string{"call"}, want: "callback the caller",
		},
		{
			name: "keyword case-insensitive and repeated", input: "Urgent urgent URGENT fix",
			consumed: []string{"urgent"}, want: "fix",
		},
		{
			name: "to kept without a reminder verb", input: "to do list",
			want: "to do list",
		},
		{
			name: "edge punctuation", input: "Pay rent, tomorrow",
			dateTexts: []string{"tomorrow"}, want: "Pay rent",
		},
		{
			name: "separator left by a removed word", input: "remind me to to buy meeting, notes",
			consumed: []string{"remind", "meeting"}, want: "buy, notes",
		},
		{
			name: "separator before a removed date", input: "call Sam ; tomorrow at noon",
			dateTexts: []string{"tomorrow at noon"}, want: "call Sam",
		},
		{
			name: "empty becomes Untitled", input: "Urgent team meeting tomorrow afternoon",
			consumed: []string{"urgent", "meeting", "team"}, dateTexts: []string{"tomorrow afternoon"}, want: model.DefaultTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleaner.Clean(tt.input, tt.consumed, tt.dateTexts))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []struct {
		input     string
		consumed  []string
		dateTexts []string
	}{
		{input: "remind me to pay bills next business day", consumed: []string{"remind"}, dateTexts: []string{"next business day"}},
		{input: "#work dinner with Sam at 7pm", consumed: []string{"dinner"}, dateTexts: []string{"at 7pm"}},
		{input: "call call mom, urgent!", consumed: []string{"call", "urgent"}},
		{input: "remind me to to to stretch", consumed: []string{"remind"}},
		{input: "remind me to to buy meeting, notes", consumed: []string{"remind", "meeting"}},
		{input: "  ", consumed: nil},
	}

	for _, in := range inputs {
		once := cleaner.Clean(in.input, in.consumed, in.dateTexts)
		twice := cleaner.Clean(once, in.consumed, in.dateTexts)
		assert.Equal(t, once, twice, in.input)
	}
}
