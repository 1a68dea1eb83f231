package mappers

import (
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// TokenToEntity converts a token row to the domain token.
func TokenToEntity(model *models.TokenModel) *token.Token {
	if model == nil {
		return nil
	}
	return token.ReconstructToken(
		model.ID,
		model.UserID,
		token.Purpose(model.Purpose),
		model.TokenHash,
		model.ExpiresAt,
		model.IsUsed,
		model.UsedAt,
		model.IPAddress,
		model.CreatedAt,
	)
}

// TokenToModel converts a domain token to its row.
func TokenToModel(entity *token.Token) *models.TokenModel {
	return &models.TokenModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Purpose:   entity.Purpose().String(),
		TokenHash: entity.TokenHash(),
		ExpiresAt: entity.ExpiresAt(),
		IsUsed:    entity.IsUsed(),
		UsedAt:    entity.UsedAt(),
		IPAddress: entity.IPAddress(),
		CreatedAt: entity.CreatedAt(),
	}
}
