package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User est la projection publique d'un utilisateur (jamais de credentials dedans)
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// StoredUser est la forme persistée : la projection publique + le placeholder de mot de passe
type StoredUser struct {
	User
	PasswordHash string `json:"passwordHash,omitempty"`
}

func (u StoredUser) Public() User {
	return u.User
}
