package models

// Role is a user's role inside a class.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type Class struct {
	ID             int64   `json:"class_id"`
	ClassName      string  `json:"class_name"`
	ClassReference *string `json:"class_reference"`
	ClientID       *int64  `json:"client_id"`
}

type ClassUpdate struct {
	ClassName      *string `json:"class_name"`
	ClassReference *string `json:"class_reference"`
	ClientID       *int64  `json:"client_id"`
}

// ClassUser is a class membership.
type ClassUser struct {
	ClassID int64 `json:"class_id"`
	UserID  int64 `json:"user_id"`
	Role    Role  `json:"role"`
}

// ClassMember is a user of a class as listed from the class side.
type ClassMember struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
