package models

// Role names mirrored from the backend's security vocabulary.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is the durable record of who is signed in.
type User struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleLabel returns the display label for the user's effective role.
func (u User) RoleLabel() string {
	if u.HasRole(RoleAdmin) {
		return "Administrador"
	}
	return "Usuário"
}

// Session pairs the signed-in user with the Basic credential used on every
// outgoing backend request. A non-empty Credentials value always
// corresponds to the last successful login.
type Session struct {
	User        User
	Credentials string
}

// IsAuthenticated reports whether a user record is present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User.Username != ""
}
