package dashboard

import (
	"strings"
	"testing"
	"time"

	"taskboard/pkg/task"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func sample() []task.Task {
	return []task.Task{
		{ID: "1", Name: "Standup", Category: "Work", DueDate: "2024-06-01", Status: "pending"},
		{ID: "2", Name: "Groceries", Category: "Home", DueDate: "2024-06-03", Status: "pending"},
		{ID: "3", Name: "Ship release", Category: "Work", DueDate: "2024-05-30", Status: "completed"},
		{ID: "4", Name: "Taxes", Category: "", DueDate: "", Status: "completed"},
	}
}

func TestBuild(t *testing.T) {
	s := Build(sample(), now, 0)
	if s.WindowDays != 7 || s.Total != 4 {
		t.Errorf("window/total = %d/%d", s.WindowDays, s.Total)
	}
	if s.DueToday != 1 || s.Upcoming != 1 || s.CompletedInRange != 1 {
		t.Errorf("counts = %d/%d/%d", s.DueToday, s.Upcoming, s.CompletedInRange)
	}
	want := []Slice{
		{"Work", 2, "#0088FE"},
		{"Home", 1, "#00C49F"},
		{"", 1, "#FFBB28"},
	}
	if len(s.Categories) != len(want) {
		t.Fatalf("categories = %+v", s.Categories)
	}
	for i := range want {
		if s.Categories[i] != want[i] {
			t.Errorf("category %d = %+v, want %+v", i, s.Categories[i], want[i])
		}
	}
	if len(s.Completed) != 1 || s.Completed[0] != (Bar{Name: "Ship release", Value: 1}) {
		t.Errorf("completed = %+v", s.Completed)
	}
}

func TestPaletteWraps(t *testing.T) {
	var tasks []task.Task
	for _, c := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tasks = append(tasks, task.Task{Category: c})
	}
	s := Build(tasks, now, 7)
	if s.Categories[6].Color != Palette[0] {
		t.Errorf("7th color = %s, want %s", s.Categories[6].Color, Palette[0])
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(Build(sample(), now, 7))
	for _, want := range []string{
		"- Tasks due today: 1",
		"- Upcoming tasks: 1",
		"- Tasks completed in last 7 days: 1",
		"| Work | 2 |",
		"|  | 1 |",
		"| Ship release | 1 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownEmptyCategoryIsDistinct(t *testing.T) {
	tasks := []task.Task{{Category: ""}, {Category: "(none)"}, {Category: "(none)"}}
	out := Markdown(Build(tasks, now, 7))
	if !strings.Contains(out, "|  | 1 |") || !strings.Contains(out, "| (none) | 2 |") {
		t.Errorf("empty and literal categories should render apart:\n%s", out)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	out := Markdown(Build(nil, now, 7))
	if !strings.Contains(out, "No tasks yet.") || !strings.Contains(out, "Nothing completed.") {
		t.Errorf("empty dashboard:\n%s", out)
	}
}

func TestHTMLSanitizesTaskText(t *testing.T) {
	tasks := []task.Task{
		{Name: `<script>alert(1)</script>`, Category: "a|b", DueDate: "2024-06-01", Status: "completed"},
	}
	out, err := HTML(Build(tasks, now, 7))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived:\n%s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected a rendered table:\n%s", out)
	}
	if !strings.Contains(out, "a|b") {
		t.Errorf("escaped pipe should render literally:\n%s", out)
	}
}
