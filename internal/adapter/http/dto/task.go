package dto

type TaskItem struct {
	ID           uint64        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Author       uint64        `json:"author"`
	Assignee     uint64        `json:"assignee"`
	Status       string        `json:"status"`
	Priority     string        `json:"priority"`
	CreationDate string        `json:"creation_date"`
	Comments     []CommentItem `json:"comments"`
}

type CommentItem struct {
	ID      uint64 `json:"id"`
	Content string `json:"content"`
	TaskID  uint64 `json:"task_id"`
	Author  uint64 `json:"author"`
}

type TaskPage struct {
	Items      []TaskItem `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

type CreateTaskRequest struct {
	AuthorID    uint64 `json:"author_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=65535"`
	Priority    string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	Assignee    uint64 `json:"assignee" binding:"omitempty"`
}

type AddCommentRequest struct {
	TaskID   uint64 `json:"task_id" binding:"required"`
	Content  string `json:"content" binding:"required,max=65535"`
	AuthorID uint64 `json:"author_id" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS DONE"`
}
