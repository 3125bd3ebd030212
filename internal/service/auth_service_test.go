package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrewarnaud1/mymanager/config"
	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/internal/repository"
	"github.com/andrewarnaud1/mymanager/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *jwt.Manager, *repository.Repository) {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "unit-test-secret-0123456789",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	repo := newTestRepo()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, testLogger()), jwtMgr, repo
}

func addAccount(t *testing.T, repo *repository.Repository, username, password, role string, active bool) *model.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	account := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	if err := repo.Account.Create(context.Background(), account); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func TestAuthLogin(t *testing.T) {
	svc, jwtMgr, repo := newAuthFixture(t)
	ctx := context.Background()
	account := addAccount(t, repo, "marie", "correct-password", model.RoleManager, true)

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Username: "marie", Password: "correct-password"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.Account.ID != account.AccountID || tokens.Account.Role != model.RoleManager {
		t.Errorf("account view: %+v", tokens.Account)
	}
	if tokens.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in = %d", tokens.ExpiresIn)
	}

	claims, err := jwtMgr.ParseToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.AccountID != account.AccountID || claims.TokenType != "access" {
		t.Errorf("claims: %+v", claims)
	}

	refresh, err := jwtMgr.ParseToken(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
	if refresh.TokenType != "refresh" {
		t.Errorf("refresh token type = %q", refresh.TokenType)
	}
}

func TestAuthLoginRejections(t *testing.T) {
	svc, _, repo := newAuthFixture(t)
	ctx := context.Background()
	addAccount(t, repo, "marie", "correct-password", model.RoleManager, true)
	addAccount(t, repo, "gone", "correct-password", model.RoleStaff, false)

	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "marie", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "gone", Password: "correct-password"}); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("disabled account: got %v", err)
	}
}

func TestAuthLogoutWithoutRedis(t *testing.T) {
	svc, jwtMgr, repo := newAuthFixture(t)
	ctx := context.Background()
	account := addAccount(t, repo, "marie", "correct-password", model.RoleManager, true)

	refresh, err := jwtMgr.GenerateRefreshToken(account.AccountID, account.Role)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// no Redis: logout succeeds and the token simply ages out
	if err := svc.Logout(ctx, &dto.LogoutRequest{RefreshToken: refresh}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	// malformed tokens need no revocation either
	if err := svc.Logout(ctx, &dto.LogoutRequest{RefreshToken: "garbage"}); err != nil {
		t.Fatalf("logout garbage: %v", err)
	}
}

func TestAuthGetCurrentAccount(t *testing.T) {
	svc, _, repo := newAuthFixture(t)
	ctx := context.Background()
	account := addAccount(t, repo, "marie", "correct-password", model.RoleManager, true)

	view, err := svc.GetCurrentAccount(ctx, account.AccountID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Username != "marie" {
		t.Errorf("username = %q", view.Username)
	}

	if _, err := svc.GetCurrentAccount(ctx, "missing"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("missing account: got %v", err)
	}
}
