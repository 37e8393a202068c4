package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WorkspaceClaims are the JWT claims that bind a request to one workspace.
type WorkspaceClaims struct {
	WorkspaceID string `json:"workspace_id"`
	jwt.RegisteredClaims
}

// CreateWorkspaceResponse hands the client the bearer token for its new workspace.
type CreateWorkspaceResponse struct {
	WorkspaceID string    `json:"workspace_id"`
	Token       string    `json:"token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
