package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/store-rating/internal/model"
)

const testSecret = "my_test_jwt_secret"

func TestNewAccessToken_ClaimsRoundTrip(t *testing.T) {
	at, err := NewAccessToken(testSecret, 42, model.RoleStoreOwner, 60)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token string")
	}
	if at.JTI == "" {
		t.Fatal("empty jti")
	}
	if !at.Exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", at.Exp)
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("expected sub=42, got %v", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "STORE_OWNER" {
		t.Errorf("expected role=STORE_OWNER, got %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti != at.JTI {
		t.Errorf("expected jti=%s, got %v", at.JTI, claims["jti"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected exp claim to be populated")
	}
}

func TestNewAccessToken_WrongSecret(t *testing.T) {
	at, err := NewAccessToken(testSecret, 7, model.RoleNormalUser, 5)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	_, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("totally_wrong_secret"), nil
	})
	if err == nil {
		t.Error("expected parse error with wrong secret, got nil")
	}
}

func TestNewAccessToken_UniqueJTI(t *testing.T) {
	a, err := NewAccessToken(testSecret, 1, model.RoleNormalUser, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewAccessToken(testSecret, 1, model.RoleNormalUser, 5)
	if err != nil {
		t.Fatal(err)
	}
	if a.JTI == b.JTI {
		t.Errorf("expected distinct jti values, both were %s", a.JTI)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret@123", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !VerifyPassword(hash, "Secret@123") {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword(hash, "Wrong@123") {
		t.Error("expected wrong password to fail verification")
	}
}
