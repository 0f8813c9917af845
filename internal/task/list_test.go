package task

import (
	"strings"
	"testing"
)

// seedList builds a list of tasks with the given titles, top to bottom,
// and returns the list plus the IDs in display order.
func seedList(t *testing.T, titles ...string) (*List, []string) {
	t.Helper()
	l := NewList()
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		task := l.Add(title, PositionBottom)
		if task == nil {
			t.Fatalf("Add(%q) returned nil", title)
		}
		ids = append(ids, task.ID)
	}
	return l, ids
}

// assertOrder checks the list contains exactly the given titles in order.
func assertOrder(t *testing.T, l *List, want ...string) {
	t.Helper()
	tasks := l.Tasks()
	if len(tasks) != len(want) {
		t.Fatalf("list has %d tasks, want %d (%v)", len(tasks), len(want), want)
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		pos       Position
		wantTitle string
	}{
		{name: "top", title: "Walk dog", pos: PositionTop, wantTitle: "Walk dog"},
		{name: "bottom", title: "Walk dog", pos: PositionBottom, wantTitle: "Walk dog"},
		{name: "trims whitespace", title: "  Buy milk  ", pos: PositionTop, wantTitle: "Buy milk"},
		{name: "trims tabs and newlines", title: "\t Buy milk \n", pos: PositionBottom, wantTitle: "Buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := seedList(t, "existing")

			task := l.Add(tt.title, tt.pos)
			if task == nil {
				t.Fatal("Add() returned nil")
			}
			if task.ID == "" {
				t.Error("task.ID is empty")
			}
			if task.Title != tt.wantTitle {
				t.Errorf("task.Title = %q, want %q", task.Title, tt.wantTitle)
			}
			if task.Done {
				t.Error("task.Done = true, want false")
			}

			if l.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", l.Len())
			}
			tasks := l.Tasks()
			wantIdx := 0
			if tt.pos == PositionBottom {
				wantIdx = len(tasks) - 1
			}
			if tasks[wantIdx].ID != task.ID {
				t.Errorf("new task at index %d, want index %d", indexOfID(tasks, task.ID), wantIdx)
			}
		})
	}
}

func indexOfID(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func TestAdd_BlankIsNoOp(t *testing.T) {
	for _, title := range []string{"", " ", "   ", "\t", "\n", " \t \n "} {
		l, _ := seedList(t, "keep me")
		if task := l.Add(title, PositionTop); task != nil {
			t.Errorf("Add(%q) = %+v, want nil", title, task)
		}
		assertOrder(t, l, "keep me")
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	l := NewList()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := l.Add("task", PositionTop)
		if seen[task.ID] {
			t.Fatalf("duplicate ID generated: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestDelete(t *testing.T) {
	l, ids := seedList(t, "a", "b", "c")

	l.Delete(ids[1])
	assertOrder(t, l, "a", "c")

	// Unknown ID leaves the list untouched.
	l.Delete("nope")
	l.Delete(ids[1]) // already gone
	assertOrder(t, l, "a", "c")
}

func TestToggle(t *testing.T) {
	l, ids := seedList(t, "a")

	l.Toggle(ids[0])
	if got, _ := l.Get(ids[0]); !got.Done {
		t.Error("Done = false after first toggle, want true")
	}

	// Toggle is its own inverse.
	l.Toggle(ids[0])
	if got, _ := l.Get(ids[0]); got.Done {
		t.Error("Done = true after second toggle, want false")
	}

	// Unknown ID is a no-op.
	l.Toggle("nope")
	assertOrder(t, l, "a")
}

func TestEditTitle(t *testing.T) {
	l, ids := seedList(t, "draft")

	l.EditTitle(ids[0], "  final  ")
	if got, _ := l.Get(ids[0]); got.Title != "final" {
		t.Errorf("Title = %q, want %q", got.Title, "final")
	}

	// An edit that trims to empty commits as empty; the task survives.
	l.EditTitle(ids[0], "   ")
	got, ok := l.Get(ids[0])
	if !ok {
		t.Fatal("task deleted by empty edit")
	}
	if got.Title != "" {
		t.Errorf("Title = %q, want empty", got.Title)
	}

	l.EditTitle("nope", "x")
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestClearCompleted(t *testing.T) {
	l, ids := seedList(t, "a", "b", "c", "d")
	l.Toggle(ids[0])
	l.Toggle(ids[2])

	l.ClearCompleted()

	assertOrder(t, l, "b", "d")
	for _, task := range l.Tasks() {
		if task.Done {
			t.Errorf("task %q still completed after ClearCompleted", task.Title)
		}
	}
	// Survivors keep their IDs.
	if _, ok := l.Get(ids[1]); !ok {
		t.Error("surviving task lost its ID")
	}
	if _, ok := l.Get(ids[3]); !ok {
		t.Error("surviving task lost its ID")
	}
}

func TestClearCompleted_Empty(t *testing.T) {
	l := NewList()
	fired := false
	l.OnChange(func() { fired = true })

	l.ClearCompleted()

	if fired {
		t.Error("ClearCompleted on empty list fired a change notification")
	}
}

func TestClearAll(t *testing.T) {
	l, _ := seedList(t, "a", "b", "c")
	l.ClearAll()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestMove(t *testing.T) {
	// All cases operate on [a, b, c] built top to bottom.
	tests := []struct {
		name   string
		source string
		target string
		above  bool
		want   []string
	}{
		// The two canonical cases.
		{name: "last above middle", source: "c", target: "b", above: true, want: []string{"a", "c", "b"}},
		{name: "first below middle", source: "a", target: "b", above: false, want: []string{"b", "a", "c"}},

		// Full boundary matrix of the remaining source/target/side combos.
		{name: "first above middle", source: "a", target: "b", above: true, want: []string{"a", "b", "c"}},
		{name: "first above last", source: "a", target: "c", above: true, want: []string{"b", "a", "c"}},
		{name: "first below last", source: "a", target: "c", above: false, want: []string{"b", "c", "a"}},
		{name: "middle above first", source: "b", target: "a", above: true, want: []string{"b", "a", "c"}},
		{name: "middle below first", source: "b", target: "a", above: false, want: []string{"a", "b", "c"}},
		{name: "middle above last", source: "b", target: "c", above: true, want: []string{"a", "b", "c"}},
		{name: "middle below last", source: "b", target: "c", above: false, want: []string{"a", "c", "b"}},
		{name: "last below middle", source: "c", target: "b", above: false, want: []string{"a", "b", "c"}},
		{name: "last above first", source: "c", target: "a", above: true, want: []string{"c", "a", "b"}},
		{name: "last below first", source: "c", target: "a", above: false, want: []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ids := seedList(t, "a", "b", "c")
			byTitle := map[string]string{"a": ids[0], "b": ids[1], "c": ids[2]}

			l.Move(byTitle[tt.source], byTitle[tt.target], tt.above)

			assertOrder(t, l, tt.want...)
		})
	}
}

func TestMove_NoOps(t *testing.T) {
	l, ids := seedList(t, "a", "b", "c")
	fireCount := 0
	l.OnChange(func() { fireCount++ })

	l.Move(ids[0], ids[0], true)   // source == target
	l.Move(ids[0], "nope", true)   // unknown target
	l.Move("nope", ids[1], false)  // unknown source
	l.Move("nope", "other", false) // both unknown
	l.Move(ids[0], ids[1], true)   // already directly above target

	assertOrder(t, l, "a", "b", "c")
	if fireCount != 0 {
		t.Errorf("no-op moves fired %d change notifications", fireCount)
	}
}

func TestMove_LongList(t *testing.T) {
	l, ids := seedList(t, "a", "b", "c", "d", "e")

	// Drag b below d: [a, c, d, b, e].
	l.Move(ids[1], ids[3], false)
	assertOrder(t, l, "a", "c", "d", "b", "e")

	// Drag e above a: [e, a, c, d, b].
	l.Move(ids[4], ids[0], true)
	assertOrder(t, l, "e", "a", "c", "d", "b")
}

func TestOnChange(t *testing.T) {
	l := NewList()
	fireCount := 0
	l.OnChange(func() { fireCount++ })

	task := l.Add("a", PositionTop)
	l.Toggle(task.ID)
	l.EditTitle(task.ID, "b")
	l.Delete(task.ID)

	if fireCount != 4 {
		t.Errorf("change fired %d times, want 4", fireCount)
	}

	// No-ops stay silent.
	l.Add("   ", PositionTop)
	l.Delete("nope")
	l.Toggle("nope")
	if fireCount != 4 {
		t.Errorf("no-ops fired notifications, count = %d, want 4", fireCount)
	}
}

func TestNewListFrom_DropsDuplicatesAndBlanks(t *testing.T) {
	l := NewListFrom([]Task{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second", Done: true},
		{ID: "1", Title: "duplicate of first"},
		{ID: "", Title: "no id"},
	})

	assertOrder(t, l, "first", "second")
	if got, _ := l.Get("1"); got.Title != "first" {
		t.Errorf("duplicate resolution kept %q, want first occurrence", got.Title)
	}
}

func TestTaskEqual(t *testing.T) {
	a := Task{ID: "1", Title: "x", Done: false}
	if !a.Equal(Task{ID: "1", Title: "x", Done: false}) {
		t.Error("identical tasks not Equal")
	}
	if a.Equal(Task{ID: "1", Title: "y", Done: false}) {
		t.Error("same ID with different title reported Equal")
	}
	if a.Equal(Task{ID: "1", Title: "x", Done: true}) {
		t.Error("same ID with different completion reported Equal")
	}
	if a.Equal(Task{ID: "2", Title: "x", Done: false}) {
		t.Error("different IDs reported Equal")
	}
}

func TestTasks_Snapshot(t *testing.T) {
	l, ids := seedList(t, "a", "b")

	snap := l.Tasks()
	snap[0].Title = "mutated"
	snap[1].Done = true

	if got, _ := l.Get(ids[0]); got.Title != "a" {
		t.Error("mutating a snapshot changed the list")
	}
	if got, _ := l.Get(ids[1]); got.Done {
		t.Error("mutating a snapshot changed the list")
	}
}

func TestScenario_EndToEnd(t *testing.T) {
	l := NewList()

	l.Add("  Buy milk  ", PositionTop)
	assertOrder(t, l, "Buy milk")

	l.Add("Walk dog", PositionTop)
	assertOrder(t, l, "Walk dog", "Buy milk")

	walk := l.Tasks()[0]
	l.Toggle(walk.ID)
	if got, _ := l.Get(walk.ID); !got.Done {
		t.Fatal("Walk dog not completed")
	}

	l.ClearCompleted()
	assertOrder(t, l, "Buy milk")
}

func TestRemaining(t *testing.T) {
	l, ids := seedList(t, "a", "b", "c")
	if l.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", l.Remaining())
	}
	l.Toggle(ids[1])
	if l.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", l.Remaining())
	}
}

func TestAdd_LongTitlePreserved(t *testing.T) {
	long := strings.Repeat("x", 500)
	l := NewList()
	task := l.Add(long, PositionBottom)
	if task.Title != long {
		t.Error("long title truncated; the store imposes no length limit")
	}
}
