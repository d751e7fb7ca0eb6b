package service

import (
	"context"
	"time"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	commentRepository ports.CommentRepository
	userRepository    ports.UserRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	taskRepository ports.TaskRepository,
	commentRepository ports.CommentRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		commentRepository: commentRepository,
		userRepository:    userRepository,
	}
}

// CreateTask persists a new PENDING task dated today. Author and
// assignee ids are taken as given; existence is not checked here.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		Title:        input.Title,
		Description:  input.Description,
		Author:       input.AuthorID,
		Assignee:     input.Assignee,
		Status:       domain.TaskStatusPending,
		Priority:     input.Priority,
		CreationDate: time.Now(),
	}

	return s.taskRepository.CreateTask(ctx, task)
}

// AddComment verifies that both the task and the comment author exist
// before persisting anything.
func (s *TaskService) AddComment(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Comment{}, err
	}

	author, err := s.userRepository.FindByID(ctx, authorID)
	if err != nil {
		return domain.Comment{}, err
	}

	return s.commentRepository.AddComment(ctx, domain.Comment{
		Content: content,
		TaskID:  task.ID,
		Author:  author.ID,
	})
}

func (s *TaskService) SetAssignee(ctx context.Context, assigneeID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	assignee, err := s.userRepository.FindByID(ctx, assigneeID)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.UpdateAssignee(ctx, task.ID, assignee.ID); err != nil {
		return domain.Task{}, err
	}

	task.Assignee = assignee.ID
	task.Comments, err = s.commentRepository.ListByTask(ctx, task.ID)
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// ChangeStatus overwrites the status unconditionally; any status may
// move to any other status, including DONE back to PENDING.
func (s *TaskService) ChangeStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.UpdateStatus(ctx, task.ID, status); err != nil {
		return domain.Task{}, err
	}

	task.Status = status
	task.Comments, err = s.commentRepository.ListByTask(ctx, task.ID)
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// DeleteTask deletes by id without checking existence first; deleting
// a nonexistent task succeeds silently.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, taskID)
}

// ListTasksPaged requires exactly one of AuthorID and AssigneeID to be
// set; anything else is domain.ErrInvalidTaskQuery.
func (s *TaskService) ListTasksPaged(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error) {
	if (query.AuthorID != nil) == (query.AssigneeID != nil) {
		return domain.TaskPage{}, domain.ErrInvalidTaskQuery
	}

	return s.taskRepository.ListPaged(ctx, query)
}
