package apierrors

const (
	MsgInvalidPayload     = "invalidPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidUserID      = "invalidUserID"
	MsgInvalidTaskQuery   = "invalidTaskQuery"
	MsgTaskNotFound       = "taskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUsernameTaken      = "usernameTaken"
	MsgAccessDenied       = "accessDenied"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailAddComment     = "failAddComment"
	MsgFailAssignTask     = "failAssignTask"
	MsgFailChangeStatus   = "failChangeStatus"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailListTasks      = "failListTasks"
)
