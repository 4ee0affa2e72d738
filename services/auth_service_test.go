package services

import (
	"testing"

	"swift-courier/models"
	"swift-courier/repositories"
)

func newTestAuthService() *AuthService {
	return &AuthService{userRepo: repositories.NewMemoryUserRepository()}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()

	registered, err := svc.Register(models.RegisterRequest{
		Email:    "sam@example.com",
		Password: "parcels123",
		FullName: "Sam Carter",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a token on registration")
	}
	if registered.User.Role != "customer" {
		t.Errorf("expected customer role, got %q", registered.User.Role)
	}

	loggedIn, err := svc.Login(models.LoginRequest{
		Email:    "sam@example.com",
		Password: "parcels123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.Token == "" {
		t.Error("expected a token on login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()

	req := models.RegisterRequest{
		Email:    "sam@example.com",
		Password: "parcels123",
		FullName: "Sam Carter",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(req); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()

	svc.Register(models.RegisterRequest{
		Email:    "sam@example.com",
		Password: "parcels123",
		FullName: "Sam Carter",
	})

	if _, err := svc.Login(models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong",
	}); err == nil {
		t.Error("expected login with wrong password to fail")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Login(models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}); err == nil {
		t.Error("expected login for unknown user to fail")
	}
}
