package authz

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Context is the immutable set of capabilities resolved for one request.
// The zero value grants nothing.
type Context struct {
	identity domain.Identity
	caps     map[Scope]Capability
}

func newContext(identity domain.Identity, caps map[Scope]Capability) Context {
	return Context{identity: identity, caps: caps}
}

// Identity returns the identity the capabilities were resolved for.
func (c Context) Identity() domain.Identity { return c.identity }

// Capability returns the capability for scope, if it was resolved.
func (c Context) Capability(scope Scope) (Capability, bool) {
	capability, ok := c.caps[scope]
	return capability, ok
}

// ID returns the resource id of scope, or uuid.Nil.
func (c Context) ID(scope Scope) uuid.UUID {
	return c.caps[scope].ID
}

// Require checks that every scope was resolved with read access, and with
// write access when write is set.
func (c Context) Require(write bool, scopes ...Scope) error {
	for _, scope := range scopes {
		capability, ok := c.caps[scope]
		if !ok || !capability.Read || (write && !capability.Write) {
			return domain.NewAuthorizationError(string(scope), capability.ID, c.identity)
		}
	}
	return nil
}
