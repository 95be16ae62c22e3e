package models

// RoleAdmin is the only role currently authorized for back-office actions.
const RoleAdmin = "admin"

// Session is the locally persisted record of the current authenticated
// caller: four key/value entries, any subset of which may be absent. The
// Authenticated flag is never trustworthy on its own; it must be recomputed
// from token validity.
type Session struct {
	Authenticated bool   `json:"auth"`
	Token         string `json:"token"`
	Username      string `json:"username"`
	Role          string `json:"role"`
}

// IsEmpty reports whether no session data is stored at all.
func (s Session) IsEmpty() bool {
	return !s.Authenticated && s.Token == "" && s.Username == "" && s.Role == ""
}

// DecodedToken holds the independently decoded header and payload segments of
// a JWT. Decoding is for claims display only and proves nothing about
// authenticity; the signature is opaque to the gateway.
type DecodedToken struct {
	Header  map[string]interface{} `json:"header"`
	Payload TokenClaims            `json:"payload"`
}

// TokenClaims is the subset of payload claims the portal inspects.
type TokenClaims struct {
	Username string  `json:"username,omitempty"`
	Role     string  `json:"role,omitempty"`
	Exp      float64 `json:"exp,omitempty"`
	Iat      float64 `json:"iat,omitempty"`
	Sub      string  `json:"sub,omitempty"`
}

// LoginRequest carries credentials to the upstream auth endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the upstream login contract. Username and role may be
// absent from the body and recovered from the token payload instead.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// SessionInfo is the session status shape served to clients.
type SessionInfo struct {
	Authenticated bool          `json:"authenticated"`
	Admin         bool          `json:"admin"`
	Username      string        `json:"username,omitempty"`
	Role          string        `json:"role,omitempty"`
	Claims        *DecodedToken `json:"claims,omitempty"`
}
