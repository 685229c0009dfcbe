// Package auth provides access token signing and the request identity model.
//
// Tokens are HS256-signed JWTs carrying the user id. The Issuer handles both
// directions: Issue for the login flow and Validate for the identity
// middleware.
//
// # Identity
//
// Identity represents the requesting principal. A request is either bound to
// a user id (Authenticated=true) or anonymous. Handlers read it back with
// IdentityFromCtx; requests that never saw the middleware resolve to the
// anonymous identity.
//
// # Usage
//
//	issuer := auth.NewIssuer(cfg.Auth)
//	token, _ := issuer.Issue(user.ID)
//
//	// In a handler:
//	id := auth.IdentityFromCtx(c)
//	if !id.Authenticated { ... }
package auth
