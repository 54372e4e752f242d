package report

import (
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"taskboard/pkg/task"
)

func ids(tasks []task.Task) []task.ID {
	out := make([]task.ID, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func wantIDs(t *testing.T, what string, got []task.Task, want ...task.ID) {
	t.Helper()
	if want == nil {
		want = []task.ID{}
	}
	if g := ids(got); !slices.Equal(g, want) {
		t.Errorf("%s = %v, want %v", what, g, want)
	}
}

var june1 = time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

func TestDueTodayKeepsInputOrder(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", DueDate: "2024-06-01", Status: "pending"},
		{ID: "2", DueDate: "2024-06-01", Status: "completed"},
	}
	wantIDs(t, "DueToday", DueToday(tasks, june1), "1", "2")
}

func TestDueTodayIgnoresTimeOfDay(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", DueDate: "2024-06-01T00:00:00Z"},
		{ID: "b", DueDate: "2024-06-01T23:59:59.000Z"},
		{ID: "c", DueDate: "2024-06-02T00:00:00Z"},
		{ID: "d", DueDate: ""},
		{ID: "e", DueDate: "not a date"},
		{ID: "f", DueDate: "2024-02-30"},
	}
	wantIDs(t, "DueToday", DueToday(tasks, june1), "a", "b")
}

func TestUpcoming(t *testing.T) {
	tasks := []task.Task{
		{ID: "may", DueDate: "2024-05-01"},
		{ID: "none", DueDate: ""},
		{ID: "july", DueDate: "2024-07-01"},
	}
	wantIDs(t, "Upcoming", Upcoming(tasks, june1), "july")
}

func TestUpcomingExcludesToday(t *testing.T) {
	tasks := []task.Task{
		{ID: "today", DueDate: "2024-06-01T23:00:00Z"},
		{ID: "tomorrow", DueDate: "2024-06-02"},
	}
	wantIDs(t, "Upcoming", Upcoming(tasks, june1), "tomorrow")
	wantIDs(t, "DueToday", DueToday(tasks, june1), "today")
}

func TestDatePartition(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", DueDate: "2024-05-31T23:59:59Z"},
		{ID: "2", DueDate: "2024-06-01"},
		{ID: "3", DueDate: ""},
		{ID: "4", DueDate: "2024-06-02"},
		{ID: "5", DueDate: "garbage"},
		{ID: "6", DueDate: "2023-12-31"},
		{ID: "7", DueDate: "2024-06-01T08:00:00Z"},
	}
	seen := map[task.ID]int{}
	for _, part := range [][]task.Task{
		DueToday(tasks, june1),
		Upcoming(tasks, june1),
		PastDue(tasks, june1),
		Undated(tasks),
	} {
		for _, tk := range part {
			seen[tk.ID]++
		}
	}
	for _, tk := range tasks {
		if seen[tk.ID] != 1 {
			t.Errorf("task %s appears in %d partitions, want 1", tk.ID, seen[tk.ID])
		}
	}
}

func TestCompletedInWindow(t *testing.T) {
	tasks := []task.Task{
		{ID: "recent", Status: "completed", DueDate: "2024-05-30"},
		{ID: "open", Status: "pending", DueDate: "2024-05-30"},
		{ID: "old", Status: "completed", DueDate: "2024-05-01"},
		{ID: "undated", Status: "completed", DueDate: ""},
		{ID: "broken", Status: "completed", DueDate: "soon"},
		{ID: "edge", Status: "completed", DueDate: "2024-05-25T15:30:00Z"},
		{ID: "justout", Status: "completed", DueDate: "2024-05-25T15:29:59Z"},
	}
	wantIDs(t, "CompletedInWindow", CompletedInWindow(tasks, june1, 7), "recent", "edge")
}

func TestCompletedInWindowUsesFullDateTime(t *testing.T) {
	// The lower bound is now-7d to the second, so a date-only value on the
	// boundary day is before the cutoff when now is mid-afternoon.
	tasks := []task.Task{{ID: "boundary", Status: "completed", DueDate: "2024-05-25"}}
	wantIDs(t, "CompletedInWindow", CompletedInWindow(tasks, june1, 7))

	midnight := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	wantIDs(t, "CompletedInWindow at midnight", CompletedInWindow(tasks, midnight, 7), "boundary")
}

func TestCompletedInWindowHasNoUpperBound(t *testing.T) {
	tasks := []task.Task{{ID: "future", Status: "completed", DueDate: "2031-01-01"}}
	wantIDs(t, "CompletedInWindow", CompletedInWindow(tasks, june1, 7), "future")
}

func TestCompletedInWindowDefault(t *testing.T) {
	tasks := []task.Task{
		{ID: "six", Status: "completed", DueDate: "2024-05-26T15:30:00Z"},
		{ID: "eight", Status: "completed", DueDate: "2024-05-24T15:30:00Z"},
	}
	wantIDs(t, "window 0", CompletedInWindow(tasks, june1, 0), "six")
	wantIDs(t, "window -3", CompletedInWindow(tasks, june1, -3), "six")
	wantIDs(t, "window 30", CompletedInWindow(tasks, june1, 30), "six", "eight")
}

func TestCompletedInWindowHugeWindow(t *testing.T) {
	tasks := []task.Task{
		{ID: "recent", Status: "completed", DueDate: "2024-05-30"},
		{ID: "ancient", Status: "completed", DueDate: "0001-01-01"},
		{ID: "open", Status: "pending", DueDate: "2024-05-30"},
	}
	week := ids(CompletedInWindow(tasks, june1, 7))
	for _, days := range []int{100_000, 200_000, maxWindowDays, maxWindowDays + 1, 1 << 40, math.MaxInt} {
		got := ids(CompletedInWindow(tasks, june1, days))
		for _, id := range week {
			if !slices.Contains(got, id) {
				t.Errorf("windowDays=%d dropped %s: %v", days, id, got)
			}
		}
	}
	wantIDs(t, "window 1<<40", CompletedInWindow(tasks, june1, 1<<40), "recent", "ancient")
}

func TestCompletedInWindowZoneLessIsUTC(t *testing.T) {
	tasks := []task.Task{
		{ID: "naive", Status: "completed", DueDate: "2024-05-25T15:30:00"},
		{ID: "space", Status: "completed", DueDate: "2024-05-25 15:30:00+00"},
	}
	wantIDs(t, "CompletedInWindow", CompletedInWindow(tasks, june1, 7), "naive", "space")
}

func TestCategoryHistogram(t *testing.T) {
	tasks := []task.Task{
		{Category: "Work"},
		{Category: "Home"},
		{Category: "Work"},
	}
	h := CategoryHistogram(tasks)
	want := []CategoryCount{{"Work", 2}, {"Home", 1}}
	if !slices.Equal(h.Buckets, want) {
		t.Errorf("buckets = %v, want %v", h.Buckets, want)
	}
	m := h.Map()
	if len(m) != 2 || m["Work"] != 2 || m["Home"] != 1 {
		t.Errorf("map = %v", m)
	}
}

func TestCategoryHistogramExactKeys(t *testing.T) {
	tasks := []task.Task{
		{Category: ""},
		{Category: "work"},
		{Category: "Work"},
		{Category: " Work"},
		{Category: ""},
	}
	h := CategoryHistogram(tasks)
	want := []CategoryCount{{"", 2}, {"work", 1}, {"Work", 1}, {" Work", 1}}
	if !slices.Equal(h.Buckets, want) {
		t.Errorf("buckets = %v, want %v", h.Buckets, want)
	}
}

func TestCategoryHistogramTotal(t *testing.T) {
	for n := 0; n < 20; n++ {
		tasks := make([]task.Task, n)
		for i := range tasks {
			tasks[i].Category = fmt.Sprintf("c%d", i%3)
		}
		if got := CategoryHistogram(tasks).Total(); got != n {
			t.Errorf("n=%d: total = %d", n, got)
		}
	}
}

func TestSortTasks(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", DueDate: "2024-06-02", Status: "pending", Category: "b"},
		{ID: "2", DueDate: "", Status: "completed", Category: "a"},
		{ID: "3", DueDate: "2024-06-01T10:00:00Z", Status: "pending", Category: ""},
		{ID: "4", DueDate: "2024-06-01", Status: "completed", Category: "a"},
	}
	wantIDs(t, "by due_date", SortTasks(tasks, SortByDueDate), "2", "4", "3", "1")
	wantIDs(t, "by status", SortTasks(tasks, SortByStatus), "2", "4", "1", "3")
	wantIDs(t, "by category", SortTasks(tasks, SortByCategory), "3", "2", "4", "1")
	wantIDs(t, "unknown key", SortTasks(tasks, SortKey("name")), "1", "2", "3", "4")
}

func TestSortTasksStableAndIdempotent(t *testing.T) {
	tasks := []task.Task{
		{ID: "x", Status: "pending"},
		{ID: "y", Status: "completed"},
		{ID: "z", Status: "pending"},
		{ID: "w", Status: "completed"},
	}
	once := SortTasks(tasks, SortByStatus)
	wantIDs(t, "sorted", once, "y", "w", "x", "z")
	twice := SortTasks(once, SortByStatus)
	if !slices.Equal(ids(once), ids(twice)) {
		t.Errorf("sort not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	tasks := []task.Task{{ID: "b", Category: "b"}, {ID: "a", Category: "a"}}
	_ = SortTasks(tasks, SortByCategory)
	wantIDs(t, "input", tasks, "b", "a")
	if got := SortTasks(nil, SortByCategory); got == nil || len(got) != 0 {
		t.Errorf("SortTasks(nil) = %v, want empty slice", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"due_date", "status", "category"} {
		if k, ok := ParseSortKey(s); !ok || string(k) != s {
			t.Errorf("ParseSortKey(%q) = %q, %v", s, k, ok)
		}
	}
	for _, s := range []string{"", "name", "Status"} {
		if _, ok := ParseSortKey(s); ok {
			t.Errorf("ParseSortKey(%q) should fail", s)
		}
	}
}
