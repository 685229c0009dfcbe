// Package accounts implements user registration and login.
//
// Passwords are stored as bcrypt hashes; a successful login returns the
// signed access token the identity middleware expects on later requests.
//
// # HTTP Endpoints
//
//   - POST /api/account/register : create a user (username + password).
//   - POST /api/account/login    : verify credentials, receive an access token.
package accounts
