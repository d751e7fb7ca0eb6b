package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/dto"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/handlers"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/middleware"
	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/pkg/apierrors"
	"github.com/Shutko92/TaskManagerApp/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) AddComment(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, taskID, authorID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *taskServiceMock) SetAssignee(ctx context.Context, assigneeID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, assigneeID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ChangeStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, taskID, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ListTasksPaged(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

func taskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/task", handler.CreateTask)
	api.POST("/task/comment", handler.AddComment)
	api.POST("/task/assign/:assigneeId", handler.SetAssignee)
	api.POST("/task/:taskId", handler.DeleteTask)
	api.PUT("/task/:id/status", handler.ChangeStatus)
	api.GET("/tasks", handler.ListTasks)
	return router
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	creationDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{
		AuthorID:    5,
		Title:       "Write the report",
		Description: "quarterly numbers",
		Priority:    domain.TaskPriorityHigh,
		Assignee:    7,
	}).Return(domain.Task{
		ID:           1,
		Title:        "Write the report",
		Description:  "quarterly numbers",
		Author:       5,
		Assignee:     7,
		Status:       domain.TaskStatusPending,
		Priority:     domain.TaskPriorityHigh,
		CreationDate: creationDate,
	}, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task", strings.NewReader(`{
		"author_id": 5,
		"title": "Write the report",
		"description": "quarterly numbers",
		"priority": "HIGH",
		"assignee": 7
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "PENDING", got.Status)
	require.Equal(t, "HIGH", got.Priority)
	require.Equal(t, "2024-01-15", got.CreationDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitleIsBadRequest(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task", strings.NewReader(`{
		"author_id": 5,
		"priority": "HIGH"
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	// Field errors are joined as "Field: message".
	require.Contains(t, got.ErrDetails.Message, "Title: is required")
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_AddComment_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("AddComment", mock.Anything, uint64(3), uint64(9), "looks good").
		Return(domain.Comment{ID: 11, Content: "looks good", TaskID: 3, Author: 9}, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/comment", strings.NewReader(`{
		"task_id": 3,
		"content": "looks good",
		"author_id": 9
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CommentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(11), got.ID)
	require.Equal(t, uint64(3), got.TaskID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddComment_TaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("AddComment", mock.Anything, uint64(404), uint64(9), "into the void").
		Return(domain.Comment{}, domain.ErrTaskNotFound).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/comment", strings.NewReader(`{
		"task_id": 404,
		"content": "into the void",
		"author_id": 9
	}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_SetAssignee_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("SetAssignee", mock.Anything, uint64(9), uint64(3)).
		Return(domain.Task{ID: 3, Assignee: 9, Status: domain.TaskStatusPending, CreationDate: time.Now()}, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/assign/9", nil)
	req.Header.Set("taskId", "3")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(9), got.Assignee)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_SetAssignee_MissingTaskHeaderIsBadRequest(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/assign/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "SetAssignee", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	creationDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasksPaged", mock.Anything, mock.MatchedBy(func(query domain.TaskQuery) bool {
		return query.AuthorID != nil && *query.AuthorID == 5 &&
			query.AssigneeID == nil &&
			query.From.Format("2006-01-02") == "2024-01-01" &&
			query.To.Format("2006-01-02") == "2024-01-31" &&
			query.Page == 0 && query.PageSize == 10
	})).Return(domain.TaskPage{
		Items: []domain.Task{
			{
				ID:           1,
				Title:        "Write the report",
				Author:       5,
				Status:       domain.TaskStatusPending,
				Priority:     domain.TaskPriorityMedium,
				CreationDate: creationDate,
				Comments:     []domain.Comment{{ID: 2, Content: "on it", TaskID: 1, Author: 7}},
			},
		},
		TotalCount: 23,
		Page:       0,
		PageSize:   10,
	}, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?author_id=5&from=2024-01-01&to=2024-01-31&offset=0&page_size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	require.Equal(t, int64(23), got.TotalCount)
	require.Equal(t, 3, got.TotalPages)
	require.Len(t, got.Items[0].Comments, 1)
	require.Equal(t, "on it", got.Items[0].Comments[0].Content)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_BothIdentitiesIsBadRequest(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasksPaged", mock.Anything, mock.Anything).
		Return(domain.TaskPage{}, domain.ErrInvalidTaskQuery).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?author_id=5&assignee_id=7&from=2024-01-01&to=2024-01-31&offset=0&page_size=10", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_MissingDatesIsBadRequest(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?author_id=5&offset=0&page_size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "ListTasksPaged", mock.Anything, mock.Anything)
}

func TestTaskHandler_ChangeStatus_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ChangeStatus", mock.Anything, uint64(3), domain.TaskStatusDone).
		Return(domain.Task{ID: 3, Status: domain.TaskStatusDone, CreationDate: time.Now()}, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/api/task/3/status", strings.NewReader(`{"status":"DONE"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "DONE", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ChangeStatus_UnknownStatusIsBadRequest(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/api/task/3/status", strings.NewReader(`{"status":"ARCHIVED"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_ChangeStatus_TaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ChangeStatus", mock.Anything, uint64(404), domain.TaskStatusDone).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/api/task/404/status", strings.NewReader(`{"status":"DONE"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(3)).Return(nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_ServiceErrorIsInternal(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(3)).Return(errors.New("db is down")).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/task/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	serviceMock.AssertExpectations(t)
}
