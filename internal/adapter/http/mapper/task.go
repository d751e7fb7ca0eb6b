package mapper

import (
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/dto"
	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Author:       task.Author,
		Assignee:     task.Assignee,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		CreationDate: task.CreationDate.Format("2006-01-02"),
		Comments:     ToCommentItems(task.Comments),
	}
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:      comment.ID,
		Content: comment.Content,
		TaskID:  comment.TaskID,
		Author:  comment.Author,
	}
}

func ToTaskPage(page domain.TaskPage) dto.TaskPage {
	return dto.TaskPage{
		Items:      ToTaskItems(page.Items),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}
}
