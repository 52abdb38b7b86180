package service

import (
	"context"
	"errors"
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"testing"
	"time"
)

func newAuthService(t *testing.T) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: " Asha@Example.com ", Password: "supersecret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "asha@example.com" || user.Password == "supersecret" {
		t.Fatalf("stored user: %+v", user)
	}

	if _, err := svc.Register(ctx, RegisterInput{Name: "Other", Email: "asha@example.com", Password: "anothersecret"}); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("duplicate email: got=%v want ErrConflict", err)
	}

	res, err := svc.Login(ctx, "ASHA@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := util.ParseJWT(res.Token, "test-secret")
	if err != nil || claims.UserID != user.ID {
		t.Fatalf("token claims: %+v err=%v", claims, err)
	}

	if _, err := svc.Login(ctx, "asha@example.com", "wrong-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got=%v want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "supersecret"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got=%v want ErrInvalidCredentials", err)
	}

	profile, err := svc.Profile(ctx, user.ID)
	if err != nil || profile.Name != "Asha" {
		t.Fatalf("Profile: %+v err=%v", profile, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	cases := []RegisterInput{
		{Name: "", Email: "a@b.com", Password: "supersecret"},
		{Name: "A", Email: "not-an-email", Password: "supersecret"},
		{Name: "A", Email: "a@b.com", Password: "short"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, util.ErrValidation) {
			t.Fatalf("in=%+v: got=%v want ErrValidation", in, err)
		}
	}
}
