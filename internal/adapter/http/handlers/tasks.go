package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/dto"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/mapper"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/middleware"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/validation"
	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
	"github.com/Shutko92/TaskManagerApp/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.NewError(http.StatusBadRequest, validation.BindingErrorMessage(err, lang)),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Assignee:    req.Assignee,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Uint64("author_id", req.AuthorID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.NewError(http.StatusBadRequest, validation.BindingErrorMessage(err, lang)),
		)
		return
	}

	comment, err := h.taskService.AddComment(c.Request.Context(), req.TaskID, req.AuthorID, req.Content)
	if err != nil {
		if h.respondNotFound(c, err, lang) {
			return
		}

		zap.L().Error("failed to add comment", zap.Uint64("task_id", req.TaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAddComment, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

// SetAssignee takes the assignee from the path and the task id from
// the taskId request header.
func (h *TaskHandler) SetAssignee(c *gin.Context) {
	lang := middleware.GetLang(c)

	assigneeID, err := strconv.ParseUint(c.Param("assigneeId"), 10, 64)
	if err != nil || assigneeID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	taskID, err := strconv.ParseUint(c.GetHeader("taskId"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	task, err := h.taskService.SetAssignee(c.Request.Context(), assigneeID, taskID)
	if err != nil {
		if h.respondNotFound(c, err, lang) {
			return
		}

		zap.L().Error("failed to assign task", zap.Uint64("task_id", taskID), zap.Uint64("assignee_id", assigneeID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAssignTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	query, err := validation.ParseTaskQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskQuery, lang),
		)
		return
	}

	page, err := h.taskService.ListTasksPaged(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTaskQuery) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskQuery, lang),
			)
			return
		}

		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page))
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.NewError(http.StatusBadRequest, validation.BindingErrorMessage(err, lang)),
		)
		return
	}

	task, err := h.taskService.ChangeStatus(c.Request.Context(), taskID, domain.TaskStatus(req.Status))
	if err != nil {
		if h.respondNotFound(c, err, lang) {
			return
		}

		zap.L().Error("failed to change task status", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailChangeStatus, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// DeleteTask succeeds even when the id does not exist; the delete is a
// silent no-op in that case.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusOK)
}

func (h *TaskHandler) respondNotFound(c *gin.Context, err error, lang string) bool {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return true
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
		)
		return true
	}
	return false
}
