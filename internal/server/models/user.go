// Package models defines server-side data models persisted in the database.
package models

// User is an identity record. PasswordHash holds the bcrypt digest and is
// never serialised; handlers render PublicUser instead.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	PasswordHash string `json:"-"`
}

// PublicUser is a User without its credential.
type PublicUser struct {
	ID        int64   `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

// Public strips the credential.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// PublicUsers strips credentials from a slice.
func PublicUsers(users []*User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// UserUpdate is a partial update; nil fields are left unchanged.
// Password is plaintext here and gets hashed by the service.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password"`
}

// UserClass is a class the user belongs to, with the user's role in it.
type UserClass struct {
	ClassID        int64   `json:"class_id"`
	ClassName      string  `json:"class_name"`
	ClassReference *string `json:"class_reference"`
	Role           Role    `json:"role"`
}

// NewUser is the input for signup and user creation. Password is plaintext.
type NewUser struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone"`
}
