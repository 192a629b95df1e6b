package tui

import "fmt"

// countNouns names the unit behind each task's completion count, so a
// finished search reads "(237 merged PRs)" rather than a bare number.
var countNouns = map[TaskID]string{
	TaskSearch:   "merged PRs",
	TaskEnrich:   "repos",
	TaskRank:     "repos",
	TaskCalendar: "days",
}

// Task represents a single task in the TUI progress display.
type Task struct {
	ID      TaskID
	Name    string
	Status  TaskStatus
	Message string
	Count   int
	Error   error
}

// NewTask creates a new task with the given ID and name.
func NewTask(id TaskID, name string) Task {
	return Task{
		ID:     id,
		Name:   name,
		Status: StatusPending,
	}
}

// View renders the task as a single line.
func (t Task) View(spinnerFrame string) string {
	icon := StatusIcon(t.Status, spinnerFrame)

	name := taskNameStyle.Render(t.Name)
	if t.Status == StatusPending {
		name = taskDimStyle.Render(t.Name)
	}

	line := fmt.Sprintf("  %s %s", icon, name)
	if detail := t.detail(); detail != "" {
		line += " " + messageStyle.Render(detail)
	}
	if t.Error != nil {
		line += " " + errorStyle.Render(t.Error.Error())
	}
	return line
}

// detail describes the task's outcome: an explicit message wins,
// otherwise the count with its unit.
func (t Task) detail() string {
	if t.Message != "" {
		return t.Message
	}
	if t.Count > 0 {
		if noun, ok := countNouns[t.ID]; ok {
			return fmt.Sprintf("(%d %s)", t.Count, noun)
		}
		return fmt.Sprintf("(%d)", t.Count)
	}
	return ""
}
