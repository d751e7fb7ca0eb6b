package ports

import (
	"context"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}
