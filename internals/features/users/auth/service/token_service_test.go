package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-not-for-production"

func TestAccessTokenRoundTrip(t *testing.T) {
	orgID := uuid.New()
	id := TokenIdentity{
		UserID:         uuid.New(),
		OrganizationID: &orgID,
		RoleSlug:       "admin",
		IsStaff:        true,
	}
	now := time.Now()

	raw, err := MakeAccessToken(testSecret, id, now)
	if err != nil {
		t.Fatalf("MakeAccessToken: %v", err)
	}

	claims, err := VerifyToken(testSecret, raw)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims["id"] != id.UserID.String() {
		t.Errorf("id claim = %v, want %s", claims["id"], id.UserID)
	}
	if claims["organization_id"] != orgID.String() {
		t.Errorf("organization_id claim = %v, want %s", claims["organization_id"], orgID)
	}
	if claims["role"] != "admin" {
		t.Errorf("role claim = %v", claims["role"])
	}
	if claims["is_owner"] != false {
		t.Errorf("is_owner claim = %v, want false", claims["is_owner"])
	}
	if claims["is_staff"] != true {
		t.Errorf("is_staff claim = %v, want true", claims["is_staff"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing")
	}
	if got := time.Unix(int64(exp), 0).Sub(now.Truncate(time.Second)); got > AccessTokenTTL+time.Second || got < AccessTokenTTL-time.Second {
		t.Errorf("exp offset = %s, want ~%s", got, AccessTokenTTL)
	}
}

func TestAccessTokenOmitsEmptyTenant(t *testing.T) {
	raw, err := MakeAccessToken(testSecret, TokenIdentity{UserID: uuid.New(), RoleSlug: "owner", IsOwner: true}, time.Now())
	if err != nil {
		t.Fatalf("MakeAccessToken: %v", err)
	}
	claims, err := VerifyToken(testSecret, raw)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if _, ok := claims["organization_id"]; ok {
		t.Error("organization_id must be absent for owner tokens")
	}
	if _, ok := claims["school_id"]; ok {
		t.Error("school_id must be absent when unset")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	raw, err := MakeAccessToken(testSecret, TokenIdentity{UserID: uuid.New()}, time.Now())
	if err != nil {
		t.Fatalf("MakeAccessToken: %v", err)
	}
	if _, err := VerifyToken("other-secret", raw); err == nil {
		t.Error("token verified under the wrong secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	raw, err := MakeAccessToken(testSecret, TokenIdentity{UserID: uuid.New()}, time.Now().Add(-2*AccessTokenTTL))
	if err != nil {
		t.Fatalf("MakeAccessToken: %v", err)
	}
	if _, err := VerifyToken(testSecret, raw); err == nil {
		t.Error("expired token verified")
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	raw, err := MakeRefreshToken(testSecret, uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("MakeRefreshToken: %v", err)
	}
	claims, err := VerifyToken(testSecret, raw)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims["typ"] != "refresh" {
		t.Errorf("typ claim = %v, want refresh", claims["typ"])
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct tokens collided")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == "some-token" {
		t.Error("token stored in the clear")
	}
}
