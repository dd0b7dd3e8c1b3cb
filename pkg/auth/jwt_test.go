package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("alice-address")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	address, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if address != "alice-address" {
		t.Errorf("expected alice-address, got %s", address)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, _ := NewManager("secret-a", time.Hour).Issue("alice")
	if _, err := NewManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token signed with another secret must fail verification")
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Hour)
	token, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Error("expired token must fail verification")
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err == nil {
		t.Error("garbage input must fail verification")
	}
}
