package detector

import "smart-quick-add/internal/model"

// Keyword tables. Order is precedence: the first row with a hit wins.

var reminderRules = []Rule[model.ItemType]{
	{Value: model.ItemTypeReminder, Confidence: model.ConfidenceHigh, Keywords: []string{"remind", "reminder", "remember", "don't forget", "note to self"}},
	{Value: model.ItemTypeReminder, Confidence: model.ConfidenceMedium, Keywords: []string{"check", "review", "follow up", "follow-up"}},
	{Value: model.ItemTypeReminder, Confidence: model.ConfidenceLow, Keywords: []string{"need to", "should", "must"}},
}

var eventRules = []Rule[model.ItemType]{
	{Value: model.ItemTypeEvent, Confidence: model.ConfidenceHigh, Keywords: []string{"meeting", "appointment", "conference", "call", "interview", "party", "celebration", "dinner", "lunch", "breakfast"}},
	{Value: model.ItemTypeEvent, Confidence: model.ConfidenceMedium, Keywords: []string{"event", "gathering", "session", "class", "webinar", "presentation"}},
	{Value: model.ItemTypeEvent, Confidence: model.ConfidenceLow, Keywords: []string{"with", "at", "schedule", "book"}},
}

var priorityRules = []Rule[model.Priority]{
	{Value: model.PriorityUrgent, Confidence: model.ConfidenceHigh, Keywords: []string{"urgent", "emergency", "critical", "asap", "immediately", "now", "crisis"}},
	{Value: model.PriorityUrgent, Confidence: model.ConfidenceMedium, Keywords: []string{"very important", "must do", "crucial", "essential", "vital"}},
	{Value: model.PriorityUrgent, Confidence: model.ConfidenceLow, Keywords: []string{"rush", "hurry", "quick"}},

	{Value: model.PriorityHigh, Confidence: model.ConfidenceHigh, Keywords: []string{"important", "priority", "significant"}},
	{Value: model.PriorityHigh, Confidence: model.ConfidenceMedium, Keywords: []string{"soon", "needed", "required", "should"}},
	{Value: model.PriorityHigh, Confidence: model.ConfidenceLow, Keywords: []string{"focus", "attention"}},

	{Value: model.PriorityLow, Confidence: model.ConfidenceHigh, Keywords: []string{"maybe", "someday", "eventually", "whenever", "optional"}},
	{Value: model.PriorityLow, Confidence: model.ConfidenceMedium, Keywords: []string{"consider", "think about", "might"}},
	{Value: model.PriorityLow, Confidence: model.ConfidenceLow, Keywords: []string{"nice to have", "if possible"}},
}

// visibilityRules yield IsPublic.
var visibilityRules = []Rule[bool]{
	{Value: true, Confidence: model.ConfidenceHigh, Keywords: []string{"public", "shared", "everyone", "team", "group", "company", "office"}},
	{Value: true, Confidence: model.ConfidenceMedium, Keywords: []string{"share with", "collaborative", "together"}},
	{Value: true, Confidence: model.ConfidenceLow, Keywords: []string{"announce", "broadcast"}},

	{Value: false, Confidence: model.ConfidenceHigh, Keywords: []string{"private", "personal", "confidential", "secret", "just me"}},
	{Value: false, Confidence: model.ConfidenceMedium, Keywords: []string{"own", "my", "solo"}},
}
