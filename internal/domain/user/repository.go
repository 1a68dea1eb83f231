package user

import (
	"context"

	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email vo.Email) (*User, error)
	ExistsByEmail(ctx context.Context, email vo.Email) (bool, error)
}
