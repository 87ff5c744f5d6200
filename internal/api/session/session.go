package session

// Session represents a server-side session minted by a successful login.
// A session is identified by the SHA-256 hash of its bearer token; the raw token
// only ever leaves the server inside the login response.
type Session struct {
	TokenHash string
	Username  string
	Expires   int64
}
