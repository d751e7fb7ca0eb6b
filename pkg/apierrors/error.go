package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/Shutko92/TaskManagerApp/pkg/translator"
)

// JsonErr is the error envelope returned by every endpoint.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err carries the HTTP status code and a human-readable message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr with the message translated for lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{code, message}}
}

// NewError builds a JsonErr from an already-formed message, e.g. a
// joined list of per-field validation messages.
func NewError(code int, message string) JsonErr {
	return JsonErr{ErrDetails: Err{code, message}}
}

// GetTransErrorMsg resolves msgKey through the i18n bundle, falling
// back to the key itself when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
