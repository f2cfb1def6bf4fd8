package host

import (
	"fmt"
	"sync"
)

// Auth is the authorization oracle. The host's signature verification is out
// of scope; contracts only ask whether an address authorized the current call.
type Auth interface {
	// RequireAuth returns nil if addr authorized the call, ErrNotAuthorized
	// otherwise.
	RequireAuth(addr Address) error
}

// MockAuth is an Auth for tests: either every address is considered to have
// authorized (AllowAll), or only explicitly granted addresses are.
type MockAuth struct {
	mu       sync.Mutex
	allowAll bool
	granted  map[Address]bool
}

// Compile-time interface check.
var _ Auth = (*MockAuth)(nil)

// NewMockAuth creates an oracle that denies everything until granted.
func NewMockAuth() *MockAuth {
	return &MockAuth{granted: make(map[Address]bool)}
}

// AllowAll makes every address pass authorization.
func (a *MockAuth) AllowAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allowAll = true
}

// Grant marks addr as having authorized.
func (a *MockAuth) Grant(addr Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.granted[addr] = true
}

// Revoke removes a grant.
func (a *MockAuth) Revoke(addr Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.granted, addr)
}

// RequireAuth checks the grant table.
func (a *MockAuth) RequireAuth(addr Address) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.allowAll || a.granted[addr] {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotAuthorized, addr.Hex())
}
