package session

// Session represents the authenticated identity and bearer token held by the client
// for a logged-in user. A session exists if and only if the user is considered
// authenticated; its absence is the sole authoritative logged-out signal.
// The wire format matches the record the browser client keeps under its
// 'currentUser' storage key.
type Session struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	TokenType string `json:"type"`
}

// Valid reports whether the session carries enough state to authenticate requests
func (ses *Session) Valid() bool {
	return ses != nil && ses.Username != "" && ses.Token != ""
}
