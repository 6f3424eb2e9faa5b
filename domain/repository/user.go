package repository

import (
	"context"

	"github.com/jekoram/reelshorter/domain/model"
)

// IUser defines user persistence operations.
type IUser interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
}
