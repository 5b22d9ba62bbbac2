package auth

import (
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("CheckPasswordHash() rejected the original password")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "ops@institute.test", "Maria", "Gomez",
		[]string{"secretary"})
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Email != "ops@institute.test" {
		t.Errorf("Email = %s", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "secretary" {
		t.Errorf("Roles = %v, want [secretary]", claims.Roles)
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "lol.nope.nah"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateJWT(tt.token); err == nil {
				t.Error("ValidateJWT() accepted an invalid token")
			}
		})
	}
}
