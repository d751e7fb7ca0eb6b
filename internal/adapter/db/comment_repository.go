package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID      uint64 `db:"id"`
	Content string `db:"content"`
	TaskID  uint64 `db:"task_id"`
	Author  uint64 `db:"author"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// AddComment is a single INSERT. Concurrent appends to the same task
// land as independent rows, so none of them can overwrite another.
func (r *CommentRepository) AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (content, task_id, author) VALUES (?, ?, ?)",
		comment.Content, comment.TaskID, comment.Author,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	comment.ID = uint64(id)
	return comment, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM comments WHERE task_id = ? ORDER BY id", taskID)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomainComment(row))
	}

	return comments, nil
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	return domain.Comment{
		ID:      row.ID,
		Content: row.Content,
		TaskID:  row.TaskID,
		Author:  row.Author,
	}
}
