package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// TokenBytes is the entropy of generated tokens.
const TokenBytes = 32

type TokenGenerator interface {
	// Generate returns a URL-safe plain token and the hash to store.
	Generate() (plainToken string, tokenHash string, err error)
	HashToken(plainToken string) string
	VerifyToken(plainToken, tokenHash string) bool
}

type DefaultTokenGenerator struct{}

func NewTokenGenerator() TokenGenerator {
	return &DefaultTokenGenerator{}
}

func (g *DefaultTokenGenerator) Generate() (string, string, error) {
	tokenBytes := make([]byte, TokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	plainToken := base64.RawURLEncoding.EncodeToString(tokenBytes)
	return plainToken, g.HashToken(plainToken), nil
}

func (g *DefaultTokenGenerator) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

func (g *DefaultTokenGenerator) VerifyToken(plainToken, tokenHash string) bool {
	return subtle.ConstantTimeCompare([]byte(g.HashToken(plainToken)), []byte(tokenHash)) == 1
}
