package auth

import "github.com/gofiber/fiber/v2"

// identityKey is the Fiber Locals key the identity middleware writes to.
const identityKey = "identity"

// Identity is the requesting principal, possibly anonymous.
type Identity struct {
	UserID        uint
	Authenticated bool
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// StoreIdentity attaches an identity to the request context.
func StoreIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(identityKey, id)
}

// IdentityFromCtx returns the identity resolved by the middleware.
// Requests that never passed through the middleware are anonymous.
func IdentityFromCtx(c *fiber.Ctx) Identity {
	if id, ok := c.Locals(identityKey).(Identity); ok {
		return id
	}
	return Anonymous()
}
