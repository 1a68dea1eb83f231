package mappers

import (
	"fmt"

	"github.com/expohub/expohub/internal/domain/user"
	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}
	role, err := user.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role: %w", err)
	}

	passwordHash := ""
	if model.PasswordHash != nil {
		passwordHash = *model.PasswordHash
	}

	entity, err := user.ReconstructUser(
		model.ID,
		email,
		passwordHash,
		model.FirstName,
		model.LastName,
		model.Phone,
		role,
		model.IsSuperuser,
		model.IsActive,
		model.EmailVerified,
		model.EmailVerifiedAt,
		model.FailedLoginAttempts,
		model.LockedUntil,
		model.LastLoginAt,
		model.PasswordChangedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	var passwordHash *string
	if entity.HasPassword() {
		hash := entity.PasswordHash()
		passwordHash = &hash
	}

	return &models.UserModel{
		ID:                  entity.ID(),
		Email:               entity.Email().String(),
		PasswordHash:        passwordHash,
		FirstName:           entity.FirstName(),
		LastName:            entity.LastName(),
		Phone:               entity.Phone(),
		Role:                entity.Role().String(),
		IsSuperuser:         entity.IsSuperuser(),
		IsActive:            entity.IsActive(),
		EmailVerified:       entity.IsEmailVerified(),
		EmailVerifiedAt:     entity.EmailVerifiedAt(),
		FailedLoginAttempts: entity.FailedLoginAttempts(),
		LockedUntil:         entity.LockedUntil(),
		LastLoginAt:         entity.LastLoginAt(),
		PasswordChangedAt:   entity.PasswordChangedAt(),
		Version:             entity.Version(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}
}
