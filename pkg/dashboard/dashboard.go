// Package dashboard assembles the dashboard view from a task snapshot and
// renders it as Markdown or HTML.
package dashboard

import (
	"time"

	"taskboard/pkg/report"
	"taskboard/pkg/task"
)

// Palette colors chart slices by position, wrapping around.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#A28BFE", "#FF6699"}

// Slice is one category in the category chart.
type Slice struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Color    string `json:"color"`
}

// Bar is one entry of the completed-tasks chart.
type Bar struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Summary is everything the dashboard shows.
type Summary struct {
	GeneratedAt      time.Time `json:"generated_at"`
	WindowDays       int       `json:"window_days"`
	Total            int       `json:"total"`
	DueToday         int       `json:"due_today"`
	Upcoming         int       `json:"upcoming"`
	CompletedInRange int       `json:"completed_in_window"`
	Categories       []Slice   `json:"categories"`
	Completed        []Bar     `json:"completed"`
}

// Build computes the dashboard for tasks as of now.
func Build(tasks []task.Task, now time.Time, windowDays int) Summary {
	if windowDays <= 0 {
		windowDays = report.DefaultWindowDays
	}
	completed := report.CompletedInWindow(tasks, now, windowDays)

	s := Summary{
		GeneratedAt:      now,
		WindowDays:       windowDays,
		Total:            len(tasks),
		DueToday:         len(report.DueToday(tasks, now)),
		Upcoming:         len(report.Upcoming(tasks, now)),
		CompletedInRange: len(completed),
		Categories:       []Slice{},
		Completed:        make([]Bar, 0, len(completed)),
	}
	for i, b := range report.CategoryHistogram(tasks).Buckets {
		s.Categories = append(s.Categories, Slice{
			Category: b.Category,
			Count:    b.Count,
			Color:    Palette[i%len(Palette)],
		})
	}
	for _, t := range completed {
		s.Completed = append(s.Completed, Bar{Name: t.Name, Value: 1})
	}
	return s
}
