package session

import (
	"testing"

	"github.com/silverfern314/notevault/internal/cryptobox"
)

func TestRegistry_LoginSetsCurrentUser(t *testing.T) {
	reg := NewRegistry()

	if reg.CurrentUser() != "" {
		t.Fatalf("Expected empty current user at startup, got %q", reg.CurrentUser())
	}
	if reg.HasActiveKey() {
		t.Fatal("Expected no active key at startup")
	}

	reg.Login("alice", cryptobox.KeyFromPassphrase("pass1"))

	if reg.CurrentUser() != "alice" {
		t.Errorf("Expected current user alice, got %q", reg.CurrentUser())
	}
	if !reg.HasActiveKey() {
		t.Error("Expected active key after login")
	}
}

func TestRegistry_ReloginOverwritesKey(t *testing.T) {
	reg := NewRegistry()

	reg.Login("alice", cryptobox.KeyFromPassphrase("old"))
	reg.Login("alice", cryptobox.KeyFromPassphrase("new"))

	key, ok := reg.ActiveKey()
	if !ok {
		t.Fatal("Expected active key after re-login")
	}
	if key != cryptobox.KeyFromPassphrase("new") {
		t.Error("Expected re-login to overwrite the stored key")
	}
}

func TestRegistry_LogoutIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Login("alice", cryptobox.KeyFromPassphrase("pass1"))

	reg.Logout()
	if reg.CurrentUser() != "" {
		t.Errorf("Expected empty current user after logout, got %q", reg.CurrentUser())
	}

	// Second logout must not panic and must leave the same state.
	reg.Logout()
	if reg.CurrentUser() != "" {
		t.Errorf("Expected empty current user after double logout, got %q", reg.CurrentUser())
	}
	if reg.HasActiveKey() {
		t.Error("Expected no active key after double logout")
	}
}

func TestRegistry_AttachSetsUserWithoutKey(t *testing.T) {
	reg := NewRegistry()

	reg.Attach("alice")
	if reg.CurrentUser() != "alice" {
		t.Errorf("Expected current user alice, got %q", reg.CurrentUser())
	}
	if reg.HasActiveKey() {
		t.Error("Expected no active key after Attach")
	}
}

func TestRegistry_LogoutEvictsOnlyCurrentUsersKey(t *testing.T) {
	reg := NewRegistry()

	reg.Login("alice", cryptobox.KeyFromPassphrase("pass-a"))
	reg.Login("bob", cryptobox.KeyFromPassphrase("pass-b"))
	reg.Logout() // evicts bob

	if reg.HasActiveKey() {
		t.Error("Expected no active key after logout")
	}

	// alice's key survives in the registry; logging back in as alice
	// with a new key still works as a plain overwrite.
	reg.Login("alice", cryptobox.KeyFromPassphrase("pass-a"))
	if !reg.HasActiveKey() {
		t.Error("Expected active key after alice logs back in")
	}
}
