package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := run(t, "parse", "remind me to pay bills next business day", "--now", "2024-05-03T10:00:00Z")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pay bills", got.Item.Title)
	assert.Equal(t, model.ItemTypeReminder, got.Item.Type)
	require.NotNil(t, got.Item.Time)
	assert.Equal(t, "2024-05-06", got.Item.Time.Format("2006-01-02"))
}

func TestParseCmd_Confirm(t *testing.T) {
	out, err := run(t, "parse", "webinar on go", "--now", "2024-05-01T10:00:00Z", "--confirm", "type=event")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, model.ItemTypeEvent, got.Item.Type)
	assert.Empty(t, got.Suggestions)
}

func TestParseCmd_ICS(t *testing.T) {
	out, err := run(t, "parse", "dinner with Sam at 7pm", "--now", "2024-05-01T10:00:00Z", "-f", "ics")
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no text", args: []string{"parse"}},
		{name: "bad now", args: []string{"parse", "buy milk", "--now", "tomorrow"}},
		{name: "bad confirm", args: []string{"parse", "buy milk", "--confirm", "priority"}},
		{name: "bad format", args: []string{"parse", "buy milk", "-f", "xml"}},
		{name: "bad engine", args: []string{"parse", "buy milk", "--engine", "llm"}},
		{name: "blank text", args: []string{"parse", "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "shopping")
	assert.Contains(t, out, "groceries")
}
