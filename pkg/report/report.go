// Package report derives dashboard and list views from a snapshot of tasks.
//
// Every function is pure: it reads the snapshot, never modifies it, and never
// fails. Malformed due dates are treated as absent.
package report

import (
	"slices"
	"strings"
	"time"

	"taskboard/pkg/task"
)

// DefaultWindowDays is the look-back window used by CompletedInWindow when
// the caller passes a non-positive value.
const DefaultWindowDays = 7

const dateLayout = "2006-01-02"

// maxWindowDays reaches back past year 0000, the earliest parseable due date.
// Wider windows admit every dated task.
const maxWindowDays = 1_000_000

// dueDay returns the YYYY-MM-DD prefix of a due date, or "" if it is absent
// or does not parse as a calendar date.
func dueDay(due string) string {
	if len(due) < len(dateLayout) {
		return ""
	}
	day := due[:len(dateLayout)]
	if _, err := time.Parse(dateLayout, day); err != nil {
		return ""
	}
	return day
}

// Layouts accepted for full date-time comparison. Values without a zone are
// read as UTC.
var dueLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	dateLayout,
}

func parseDue(due string) (time.Time, bool) {
	due = strings.TrimSpace(due)
	if due == "" {
		return time.Time{}, false
	}
	for _, layout := range dueLayouts {
		if ts, err := time.Parse(layout, due); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func filter(tasks []task.Task, keep func(task.Task) bool) []task.Task {
	out := []task.Task{}
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// DueToday returns the tasks whose due date falls on now's calendar date,
// in input order. Time of day is ignored.
func DueToday(tasks []task.Task, now time.Time) []task.Task {
	today := now.Format(dateLayout)
	return filter(tasks, func(t task.Task) bool {
		return dueDay(t.DueDate) == today
	})
}

// Upcoming returns the tasks due on a calendar date after now's.
func Upcoming(tasks []task.Task, now time.Time) []task.Task {
	today := now.Format(dateLayout)
	return filter(tasks, func(t task.Task) bool {
		day := dueDay(t.DueDate)
		return day != "" && day > today
	})
}

// PastDue returns the tasks due on a calendar date before now's, whatever
// their status.
func PastDue(tasks []task.Task, now time.Time) []task.Task {
	today := now.Format(dateLayout)
	return filter(tasks, func(t task.Task) bool {
		day := dueDay(t.DueDate)
		return day != "" && day < today
	})
}

// Undated returns the tasks with no usable due date.
func Undated(tasks []task.Task) []task.Task {
	return filter(tasks, func(t task.Task) bool {
		return dueDay(t.DueDate) == ""
	})
}

// CompletedInWindow returns completed tasks whose due date-time is at or
// after now minus windowDays days. The comparison uses the full date-time,
// and there is no upper bound: a completed task due in the future counts.
func CompletedInWindow(tasks []task.Task, now time.Time, windowDays int) []task.Task {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	bounded := windowDays <= maxWindowDays
	var since time.Time
	if bounded {
		since = now.AddDate(0, 0, -windowDays)
	}
	return filter(tasks, func(t task.Task) bool {
		if !t.Completed() {
			return false
		}
		due, ok := parseDue(t.DueDate)
		return ok && (!bounded || !due.Before(since))
	})
}

// CategoryCount is one histogram bucket.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Histogram counts tasks per category in first-seen order.
type Histogram struct {
	Buckets []CategoryCount `json:"buckets"`
}

// CategoryHistogram groups tasks by their exact category string. The empty
// category is a bucket of its own.
func CategoryHistogram(tasks []task.Task) Histogram {
	h := Histogram{Buckets: []CategoryCount{}}
	index := make(map[string]int)
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(h.Buckets)
			index[t.Category] = i
			h.Buckets = append(h.Buckets, CategoryCount{Category: t.Category})
		}
		h.Buckets[i].Count++
	}
	return h
}

// Map returns the histogram as a category → count map.
func (h Histogram) Map() map[string]int {
	m := make(map[string]int, len(h.Buckets))
	for _, b := range h.Buckets {
		m[b.Category] = b.Count
	}
	return m
}

// Total is the sum of all bucket counts.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Buckets {
		n += b.Count
	}
	return n
}

// SortKey names the field a task list is ordered by.
type SortKey string

const (
	SortByDueDate  SortKey = "due_date"
	SortByStatus   SortKey = "status"
	SortByCategory SortKey = "category"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortByDueDate, SortByStatus, SortByCategory:
		return k, true
	}
	return "", false
}

func (k SortKey) field(t task.Task) (string, bool) {
	switch k {
	case SortByDueDate:
		return t.DueDate, true
	case SortByStatus:
		return t.Status, true
	case SortByCategory:
		return t.Category, true
	}
	return "", false
}

// SortTasks returns a copy of tasks stably ordered by the raw string value of
// key. Due dates compare as stored strings, not as parsed dates. An unknown
// key leaves the copy in input order.
func SortTasks(tasks []task.Task, key SortKey) []task.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []task.Task{}
	}
	if _, ok := key.field(task.Task{}); !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b task.Task) int {
		av, _ := key.field(a)
		bv, _ := key.field(b)
		return strings.Compare(av, bv)
	})
	return out
}
