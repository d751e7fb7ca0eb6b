package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Author       uint64         `db:"author"`
	Assignee     uint64         `db:"assignee"`
	Status       string         `db:"status"`
	Priority     string         `db:"priority"`
	CreationDate time.Time      `db:"creation_date"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, author, assignee, status, priority, creation_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.Author, task.Assignee,
		string(task.Status), string(task.Priority), task.CreationDate.Format("2006-01-02"),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	task.ID = uint64(id)
	return task, nil
}

// FindByID returns the bare task row. Attaching the comment sequence
// is the caller's concern, through the comment repository.
func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM tasks WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateAssignee(ctx context.Context, taskID, assigneeID uint64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET assignee = ? WHERE id = ?", assigneeID, taskID)
	return err
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET status = ? WHERE id = ?", string(status), taskID)
	return err
}

// DeleteTask removes the task row if it exists. Deleting an id that does
// not exist is a no-op, not an error. Comments go with the task through
// the ON DELETE CASCADE on comments.task_id.
func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

func (r *TaskRepository) ListPaged(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error) {
	column := "author"
	identity := query.AuthorID
	if query.AssigneeID != nil {
		column = "assignee"
		identity = query.AssigneeID
	}

	from := query.From.Format("2006-01-02")
	to := query.To.Format("2006-01-02")

	var total int64
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM tasks WHERE "+column+" = ? AND creation_date BETWEEN ? AND ?",
		*identity, from, to,
	)
	if err != nil {
		return domain.TaskPage{}, err
	}

	var rows []taskRow
	err = r.db.SelectContext(ctx, &rows,
		"SELECT * FROM tasks WHERE "+column+" = ? AND creation_date BETWEEN ? AND ? ORDER BY id LIMIT ? OFFSET ?",
		*identity, from, to, query.PageSize, query.Page*query.PageSize,
	)
	if err != nil {
		return domain.TaskPage{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
		ids = append(ids, row.ID)
	}

	comments, err := r.commentsForTasks(ctx, ids)
	if err != nil {
		return domain.TaskPage{}, err
	}
	for i := range tasks {
		tasks[i].Comments = comments[tasks[i].ID]
	}

	return domain.TaskPage{
		Items:      tasks,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

func (r *TaskRepository) commentsForTasks(ctx context.Context, taskIDs []uint64) (map[uint64][]domain.Comment, error) {
	if len(taskIDs) == 0 {
		return map[uint64][]domain.Comment{}, nil
	}

	stmt, args, err := sqlx.In("SELECT * FROM comments WHERE task_id IN (?) ORDER BY id", taskIDs)
	if err != nil {
		return nil, err
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(stmt), args...); err != nil {
		return nil, err
	}

	byTask := make(map[uint64][]domain.Comment, len(taskIDs))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], mapCommentRowToDomainComment(row))
	}

	return byTask, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Author:       row.Author,
		Assignee:     row.Assignee,
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.TaskPriority(row.Priority),
		CreationDate: row.CreationDate,
	}

	if row.Description.Valid {
		task.Description = row.Description.String
	}

	return task
}
