package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-buddy/internal/config"
	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/logger"
	"study-buddy/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenIssuer = "study-buddy"

var ErrInvalidWorkspaceToken = errors.New("invalid workspace token")

// WorkspaceService creates anonymous workspaces and issues the bearer tokens that scope
// every other request to one of them.
type WorkspaceService interface {
	CreateWorkspace(ctx context.Context) (*dto.CreateWorkspaceResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.WorkspaceClaims, error)
	// DeleteWorkspace ends the session and discards its history immediately.
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

type workspaceServiceImpl struct {
	store    domain.WorkspaceStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewWorkspaceService(store domain.WorkspaceStore, authCfg config.AuthConfig) (WorkspaceService, error) {
	if authCfg.SecretKey == "" {
		return nil, fmt.Errorf("workspace token secret cannot be empty")
	}
	if authCfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("workspace token ttl must be positive")
	}
	return &workspaceServiceImpl{
		store:    store,
		secret:   []byte(authCfg.SecretKey),
		tokenTTL: authCfg.TokenTTL,
		now:      time.Now,
	}, nil
}

func (s *workspaceServiceImpl) CreateWorkspace(ctx context.Context) (*dto.CreateWorkspaceResponse, error) {
	now := s.now()
	ws := domain.NewWorkspace(util.NewULID(), now)
	if err := s.store.Create(ctx, ws); err != nil {
		return nil, domain.NewInternalError("Failed to create workspace", err)
	}

	expiresAt := now.Add(s.tokenTTL)
	token, err := s.createToken(ws.ID, now, expiresAt)
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign workspace token", err)
	}

	logger.Get().Info("Workspace created", zap.String("workspace_id", ws.ID))
	return &dto.CreateWorkspaceResponse{
		WorkspaceID: ws.ID,
		Token:       token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *workspaceServiceImpl) createToken(workspaceID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := dto.WorkspaceClaims{
		WorkspaceID: workspaceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   workspaceID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *workspaceServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.WorkspaceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.WorkspaceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Workspace token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Workspace token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkspaceToken, err)
	}

	claims, ok := token.Claims.(*dto.WorkspaceClaims)
	if !ok || !token.Valid || claims.WorkspaceID == "" {
		return nil, ErrInvalidWorkspaceToken
	}
	return claims, nil
}

func (s *workspaceServiceImpl) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if err := s.store.Delete(ctx, workspaceID); err != nil {
		return domain.NewInternalError("Failed to delete workspace", err)
	}
	logger.Get().Info("Workspace deleted", zap.String("workspace_id", workspaceID))
	return nil
}
