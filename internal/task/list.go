package task

import "strings"

// List is the ordered task collection. All mutations go through its methods,
// which maintain two invariants: IDs are unique, and slice order is display
// order. Operations on unknown IDs or blank input are silent no-ops rather
// than errors; the UI has nothing useful to do with such failures.
//
// List is not safe for concurrent use. All mutations arrive on the single
// Bubble Tea update loop, which serializes them for us.
type List struct {
	tasks     []Task
	listeners []func()
}

// NewList creates an empty list.
func NewList() *List {
	return &List{tasks: []Task{}}
}

// NewListFrom creates a list seeded with previously persisted tasks.
func NewListFrom(tasks []Task) *List {
	l := NewList()
	l.Reset(tasks)
	return l
}

// Reset replaces the contents with previously persisted tasks. Duplicate
// IDs (a corrupt or hand-edited file) are dropped, keeping the first
// occurrence, so the uniqueness invariant holds from the start. Listeners
// do not fire; a restore is not a mutation worth re-persisting.
func (l *List) Reset(tasks []Task) {
	l.tasks = make([]Task, 0, len(tasks))
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		l.tasks = append(l.tasks, t)
	}
}

// OnChange registers a listener invoked after every effective mutation.
// No-op operations do not fire.
func (l *List) OnChange(fn func()) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

func (l *List) notify() {
	for _, fn := range l.listeners {
		fn()
	}
}

// Tasks returns a snapshot copy of the list in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Remaining returns the number of tasks not yet completed.
func (l *List) Remaining() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// Get returns the task with the given ID, if present.
func (l *List) Get(id string) (Task, bool) {
	if i := l.index(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

func (l *List) index(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Add creates a task from title and inserts it at the given position.
// The title is trimmed first; a blank submission creates nothing and
// returns nil.
func (l *List) Add(title string, pos Position) *Task {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	t := Task{ID: newID(), Title: title}
	if pos == PositionBottom {
		l.tasks = append(l.tasks, t)
	} else {
		l.tasks = append([]Task{t}, l.tasks...)
	}
	l.notify()
	return &t
}

// Delete removes the task with the given ID. Unknown IDs are ignored.
func (l *List) Delete(id string) {
	i := l.index(id)
	if i < 0 {
		return
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.notify()
}

// Toggle flips the completion flag on the task with the given ID.
func (l *List) Toggle(id string) {
	i := l.index(id)
	if i < 0 {
		return
	}
	l.tasks[i].Done = !l.tasks[i].Done
	l.notify()
}

// EditTitle replaces a task's title with the trimmed new value. An edit
// that trims to empty still commits; the row stays in the list with an
// empty title rather than being deleted out from under the user.
func (l *List) EditTitle(id, title string) {
	i := l.index(id)
	if i < 0 {
		return
	}
	l.tasks[i].Title = strings.TrimSpace(title)
	l.notify()
}

// ClearCompleted removes every completed task, preserving the relative
// order of the remainder.
func (l *List) ClearCompleted() {
	kept := l.tasks[:0]
	removed := false
	for _, t := range l.tasks {
		if t.Done {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	if removed {
		l.notify()
	}
}

// ClearAll removes every task.
func (l *List) ClearAll() {
	if len(l.tasks) == 0 {
		return
	}
	l.tasks = []Task{}
	l.notify()
}

// Move reorders the list so the source task sits immediately above or below
// the target task. Missing IDs and source == target are no-ops.
//
// The destination index is computed against the list as it stands, then
// adjusted down by one when the source precedes it, because removing the
// source shifts everything after it left. This gives stable-array-move
// semantics: [A,B,C] with Move(C, B, above) -> [A,C,B], and
// Move(A, B, below) -> [B,A,C].
func (l *List) Move(sourceID, targetID string, above bool) {
	if sourceID == targetID {
		return
	}
	src := l.index(sourceID)
	dst := l.index(targetID)
	if src < 0 || dst < 0 {
		return
	}

	dest := dst
	if !above {
		dest++
	}
	if src < dest {
		dest--
	}
	if dest == src {
		return
	}

	moved := l.tasks[src]
	l.tasks = append(l.tasks[:src], l.tasks[src+1:]...)
	l.tasks = append(l.tasks[:dest], append([]Task{moved}, l.tasks[dest:]...)...)
	l.notify()
}
