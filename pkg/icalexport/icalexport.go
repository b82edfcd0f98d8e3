package icalexport

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"smart-quick-add/internal/model"
)

const ProductID = "-//smart-quick-add//EN"

// RFC 5545 priority scale: 1 is highest, 9 lowest.
var priorities = map[model.Priority]int{
	model.PriorityUrgent: 1,
	model.PriorityHigh:   3,
	model.PriorityNormal: 5,
	model.PriorityLow:    9,
}

// Encode writes items as one VCALENDAR to w.
func Encode(w io.Writer, stamp time.Time, items ...model.ParsedInput) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	for _, item := range items {
		cal.Children = append(cal.Children, Component(item, stamp))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode item to iCal format: %w", err)
	}
	return nil
}

// Component converts a parsed item to a VEVENT (events) or VTODO (reminders).
func Component(item model.ParsedInput, stamp time.Time) *ical.Component {
	var c *ical.Component
	if item.Type == model.ItemTypeEvent {
		c = ical.NewComponent(ical.CompEvent)
		setTime(c.Props, ical.PropDateTimeStart, item.StartTime, item.AllDay)
		setTime(c.Props, ical.PropDateTimeEnd, item.EndTime, item.AllDay)
	} else {
		c = ical.NewComponent(ical.CompToDo)
		setTime(c.Props, ical.PropDue, item.Time, item.AllDay)
	}

	c.Props.SetText(ical.PropUID, uuid.NewString())
	c.Props.SetText(ical.PropSummary, item.Title)
	c.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

	if p, ok := priorities[item.Priority]; ok {
		c.Props.SetText(ical.PropPriority, strconv.Itoa(p))
	}

	class := "PRIVATE"
	if item.IsPublic {
		class = "PUBLIC"
	}
	c.Props.SetText(ical.PropClass, class)

	if len(item.Categories) > 0 {
		p := ical.NewProp(ical.PropCategories)
		p.SetTextList(item.Categories)
		c.Props.Set(p)
	}
	return c
}

func setTime(props ical.Props, name string, t *time.Time, allDay bool) {
	if t == nil {
		return
	}
	if allDay {
		props.SetDate(name, *t)
		return
	}
	props.SetDateTime(name, *t)
}
