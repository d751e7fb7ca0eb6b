package ports

import (
	"context"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	UpdateAssignee(ctx context.Context, taskID, assigneeID uint64) error
	UpdateStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) error
	DeleteTask(ctx context.Context, id uint64) error
	ListPaged(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	AddComment(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error)
	SetAssignee(ctx context.Context, assigneeID, taskID uint64) (domain.Task, error)
	ChangeStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	ListTasksPaged(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error)
}
