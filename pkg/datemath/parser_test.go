package datemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/pkg/datemath"
)

// Wednesday, May 1, 2024 15:30 UTC
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	_, err = datemath.NewParser("Invalid/Timezone")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Tmrw", relative: "tmrw", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In a month", relative: "in a month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "In 2 hours keeps clock", relative: "in 2 hours", want: baseTime.Add(2 * time.Hour)},
		{name: "In 45 minutes", relative: "in 45 minutes", want: baseTime.Add(45 * time.Minute)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		// Wed(3) to Mon(1) is +5 days
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, got.Equal(tt.want), "Parse() got = %v, want %v", got, tt.want)
		})
	}
}

func TestFind(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	at := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		text     string
		wantText string
		want     time.Time
		wantEnd  *time.Time
		hasClock bool
		allDay   bool
	}{
		{name: "day and part of day", text: "call mom tomorrow afternoon", wantText: "tomorrow afternoon", want: at(5, 2, 12, 0)},
		{name: "clock later today", text: "dinner at 7pm", wantText: "at 7pm", want: at(5, 1, 19, 0), hasClock: true},
		{name: "clock already passed rolls forward", text: "standup at 9am", wantText: "at 9am", want: at(5, 2, 9, 0), hasClock: true},
		{name: "day with clock", text: "tomorrow at 7pm pay rent", wantText: "tomorrow at 7pm", want: at(5, 2, 19, 0), hasClock: true},
		{name: "24h clock", text: "sync 16:45", wantText: "16:45", want: at(5, 1, 16, 45), hasClock: true},
		{name: "noon", text: "lunch tomorrow at noon", wantText: "tomorrow at noon", want: at(5, 2, 12, 0), hasClock: true},
		{
			name: "range with weekday", text: "review from 2pm to 4pm friday",
			wantText: "from 2pm to 4pm friday", want: at(5, 3, 14, 0), wantEnd: ptr(at(5, 3, 16, 0)), hasClock: true,
		},
		{
			name: "range inherits meridiem", text: "workshop tomorrow 11-1pm",
			wantText: "tomorrow 11-1pm", want: at(5, 2, 11, 0), wantEnd: ptr(at(5, 2, 13, 0)), hasClock: true,
		},
		{name: "business day anchor", text: "pay bills next business day", wantText: "next business day", want: at(5, 1, 12, 0), allDay: true},
		{name: "relative hours", text: "check oven in 2 hours", wantText: "in 2 hours", want: at(5, 1, 17, 30), hasClock: true},
		{name: "month name", text: "dentist on May 20th", wantText: "May 20th", want: at(5, 20, 12, 0), allDay: true},
		{name: "iso date", text: "release 2024-06-01", wantText: "2024-06-01", want: at(6, 1, 12, 0), allDay: true},
		{name: "weekday", text: "gym on friday", wantText: "on friday", want: at(5, 3, 12, 0), allDay: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Find(tt.text, baseTime)
			require.Len(t, got, 1)

			m := got[0]
			assert.Equal(t, tt.wantText, m.Text)
			assert.Equal(t, tt.wantText, tt.text[m.Index:m.Index+len(m.Text)])
			assert.True(t, m.Start.Equal(tt.want), "Start got = %v, want %v", m.Start, tt.want)
			assert.Equal(t, tt.hasClock, m.HasClock)
			assert.Equal(t, tt.allDay, m.IsAllDay)
			if tt.wantEnd == nil {
				assert.Nil(t, m.End)
			} else {
				require.NotNil(t, m.End)
				assert.True(t, m.End.Equal(*tt.wantEnd), "End got = %v, want %v", *m.End, *tt.wantEnd)
			}
		})
	}
}

func TestFind_NoDate(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	assert.Nil(t, parser.Find("buy milk", baseTime))
	assert.Nil(t, parser.Find("", baseTime))
}

func TestFind_PastDateWithoutYearRollsOver(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	got := parser.Find("taxes 3/15", baseTime)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC), got[0].Start)
}

func TestFind_SeparateSpans(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	got := parser.Find("draft today and send tomorrow at 5pm", baseTime)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].Text)
	assert.Equal(t, "tomorrow at 5pm", got[1].Text)
}

func TestWithDefaultHour(t *testing.T) {
	parser, err := datemath.NewParser("UTC", datemath.WithDefaultHour(9))
	require.NoError(t, err)

	got := parser.Find("tomorrow", baseTime)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), got[0].Start)
}

func TestWhenParser_Find(t *testing.T) {
	parser, err := datemath.NewWhenParser("UTC")
	require.NoError(t, err)

	assert.Empty(t, parser.Find("buy milk", baseTime))

	got := parser.Find("call mom at 5pm", baseTime)
	require.NotEmpty(t, got)
	assert.True(t, got[0].HasClock)
	assert.Equal(t, 17, got[0].Start.Hour())
}

func ptr(t time.Time) *time.Time { return &t }

func TestNewEngine(t *testing.T) {
	rules, err := datemath.NewEngine("", "UTC")
	require.NoError(t, err)
	assert.IsType(t, &datemath.Parser{}, rules)

	w, err := datemath.NewEngine(datemath.EngineWhen, "UTC")
	require.NoError(t, err)
	assert.IsType(t, &datemath.WhenParser{}, w)

	_, err = datemath.NewEngine("llm", "UTC")
	assert.Error(t, err)

	_, err = datemath.NewEngine(datemath.EngineRules, "Nowhere/City")
	assert.Error(t, err)
}
