package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
)

func newAuthFixture() (*AuthService, *mockUserRepo) {
	users := newMockUserRepo()
	jm := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-with-length",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	return NewAuthService(users, jm, nil, zap.NewNop()), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "監督", Email: "coach@example.com", Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("register should issue a token pair")
	}
	if tokens.User.Role != model.RoleUser {
		t.Errorf("role = %q, want user", tokens.User.Role)
	}

	logged, err := svc.Login(ctx, &dto.LoginRequest{Email: "coach@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.User.ID != tokens.User.ID {
		t.Errorf("login resolved wrong account")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "a", Email: "dup@example.com", Password: "secret-pass"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	svc.Register(ctx, &dto.RegisterRequest{Name: "a", Email: "a@example.com", Password: "secret-pass"})

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "none@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, &dto.RegisterRequest{Name: "a", Email: "r@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Refresh(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token accepted for refresh: err = %v", err)
	}
	if _, err := svc.Refresh(ctx, tokens.RefreshToken); err != nil {
		t.Errorf("valid refresh token rejected: %v", err)
	}
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Me(context.Background(), 404); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
