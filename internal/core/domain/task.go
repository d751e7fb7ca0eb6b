package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	// Author is set once at creation and never changes; Assignee is
	// mutable through the assignment operation. Neither is guaranteed
	// to reference a live user row.
	Author       uint64
	Assignee     uint64
	Status       TaskStatus
	Priority     TaskPriority
	CreationDate time.Time
	Comments     []Comment
}

type Comment struct {
	ID      uint64
	Content string
	TaskID  uint64
	Author  uint64
}

type CreateTaskInput struct {
	AuthorID    uint64
	Title       string
	Description string
	Priority    TaskPriority
	Assignee    uint64
}

// TaskQuery selects tasks either by author or by assignee, never both,
// within an inclusive creation-date range. Page is a zero-based index.
type TaskQuery struct {
	AuthorID   *uint64
	AssigneeID *uint64
	From       time.Time
	To         time.Time
	Page       int
	PageSize   int
}

type TaskPage struct {
	Items      []Task
	TotalCount int64
	Page       int
	PageSize   int
}

func (p TaskPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := p.TotalCount / int64(p.PageSize)
	if p.TotalCount%int64(p.PageSize) != 0 {
		pages++
	}
	return int(pages)
}
