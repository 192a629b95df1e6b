package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskID(t *testing.T) {
	// Verify task IDs are distinct
	ids := []TaskID{TaskSearch, TaskProfile, TaskEnrich, TaskRank, TaskCalendar}
	seen := make(map[TaskID]bool)

	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate task ID: %d", id)
		}
		seen[id] = true
	}
}

func TestNewTask(t *testing.T) {
	task := NewTask(TaskSearch, "Searching merged pull requests")

	if task.ID != TaskSearch {
		t.Errorf("expected ID %d, got %d", TaskSearch, task.ID)
	}
	if task.Name != "Searching merged pull requests" {
		t.Errorf("unexpected name %q", task.Name)
	}
	if task.Status != StatusPending {
		t.Errorf("expected status %d, got %d", StatusPending, task.Status)
	}
}

func TestSummaryTasks(t *testing.T) {
	tasks := SummaryTasks()
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != TaskSearch || tasks[len(tasks)-1].ID != TaskRank {
		t.Error("summary tasks out of order")
	}
}

func TestCalendarTasks(t *testing.T) {
	tasks := CalendarTasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != TaskCalendar {
		t.Errorf("expected calendar task, got ID %d", tasks[0].ID)
	}
}

func TestWithTasksReplacesDefaults(t *testing.T) {
	events := make(chan Event)
	m := NewModel(events, WithTasks(CalendarTasks()))

	if len(m.tasks) != 1 || m.tasks[0].ID != TaskCalendar {
		t.Errorf("expected calendar task list, got %+v", m.tasks)
	}
}

func TestTaskViewCountNoun(t *testing.T) {
	task := NewTask(TaskSearch, "Searching merged pull requests")
	task.Status = StatusComplete
	task.Count = 237

	if got := task.View(">"); !strings.Contains(got, "(237 merged PRs)") {
		t.Errorf("expected count with unit, got %q", got)
	}

	// An explicit message wins over the count.
	task.Message = "octocat"
	if got := task.View(">"); strings.Contains(got, "237") {
		t.Errorf("message should replace the count, got %q", got)
	}
}

func TestSendEvent(t *testing.T) {
	ch := make(chan Event, 1)

	event := TaskEvent{Task: TaskSearch, Status: StatusComplete}
	SendEvent(ch, event)

	select {
	case received := <-ch:
		if te, ok := received.(TaskEvent); ok {
			if te.Task != TaskSearch {
				t.Errorf("expected task %d, got %d", TaskSearch, te.Task)
			}
		} else {
			t.Error("expected TaskEvent type")
		}
	default:
		t.Error("expected event in channel")
	}
}

func TestSendEventNilChannel(t *testing.T) {
	// Should not panic with nil channel
	SendEvent(nil, TaskEvent{})
}

func TestSendEventFullChannel(t *testing.T) {
	ch := make(chan Event)

	// Unbuffered channel with no reader: send must not block
	SendEvent(ch, TaskEvent{Task: TaskEnrich})
}

func TestSendTaskEvent(t *testing.T) {
	ch := make(chan Event, 1)

	SendTaskEvent(ch, TaskEnrich, StatusRunning,
		WithMessage("4/12"),
		WithCount(12),
	)

	select {
	case received := <-ch:
		te, ok := received.(TaskEvent)
		if !ok {
			t.Fatal("expected TaskEvent type")
		}
		if te.Task != TaskEnrich {
			t.Errorf("expected task %d, got %d", TaskEnrich, te.Task)
		}
		if te.Message != "4/12" {
			t.Errorf("expected message '4/12', got %q", te.Message)
		}
		if te.Count != 12 {
			t.Errorf("expected count 12, got %d", te.Count)
		}
	default:
		t.Error("expected event in channel")
	}
}

func TestWithError(t *testing.T) {
	ch := make(chan Event, 1)
	testErr := errors.New("test error")

	SendTaskEvent(ch, TaskSearch, StatusError, WithError(testErr))

	select {
	case received := <-ch:
		te, ok := received.(TaskEvent)
		if !ok {
			t.Fatal("expected TaskEvent type")
		}
		if te.Error != testErr {
			t.Errorf("expected error %v, got %v", testErr, te.Error)
		}
	default:
		t.Error("expected event in channel")
	}
}

func TestUpdateTaskCapturesLogin(t *testing.T) {
	events := make(chan Event)
	m := NewModel(events)

	m = m.updateTask(TaskEvent{Task: TaskProfile, Status: StatusComplete, Message: "octocat"})

	if m.login != "octocat" {
		t.Errorf("expected login 'octocat', got %q", m.login)
	}
	if !strings.Contains(m.View(), "octocat") {
		t.Error("expected login in rendered view")
	}
}

func TestStatusIcon(t *testing.T) {
	// Test that StatusIcon returns non-empty strings for all statuses
	statuses := []TaskStatus{StatusPending, StatusRunning, StatusComplete, StatusError, StatusSkipped}

	for _, status := range statuses {
		icon := StatusIcon(status, ">")
		if icon == "" {
			t.Errorf("StatusIcon returned empty string for status %d", status)
		}
	}
}
