package models

import "github.com/supabase-community/gotrue-go/types"

// Scope says which of the two session cookies a token belongs in.
type Scope int

const (
	AccessScope  Scope = 0
	RefreshScope Scope = 1
)

// User is the signed-in editor as stored on the request context. Only the
// fields the console shows are kept from the Supabase user record.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func UserFromTypesUser(user types.User) User {
	return User{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}
