package models

// Role is the privilege level stored on a user row.
type Role string

const (
	RoleUser      Role = "USER"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// User represents a registered account. The hashed password is never
// serialized to clients.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	FirstName      string `json:"first_name" gorm:"not null"`
	LastName       string `json:"last_name" gorm:"not null"`
	Username       string `json:"username" gorm:"unique;not null"`
	Email          string `json:"email" gorm:"unique;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
	Role           Role   `json:"role" gorm:"not null;default:USER"`

	AppliedJobs []AppliedJob `json:"-" gorm:"foreignKey:UserID"`
}

// UserRequest is the registration payload.
type UserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=3"`
	LastName  string `json:"last_name" binding:"required,min=3"`
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,min=3"`
	Password  string `json:"password" binding:"required,min=3"`
	Role      string `json:"role" binding:"required,min=3"`
}

// UserUpdateRequest is the profile update payload.
type UserUpdateRequest struct {
	FirstName string `json:"first_name" binding:"required,min=3"`
	LastName  string `json:"last_name" binding:"required,min=3"`
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,min=3"`
	Role      string `json:"role" binding:"required,min=3"`
}

// ChangePasswordRequest carries a password change for the current user.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=3"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest is the form-encoded login payload.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Public returns the client-facing view of the user, without credentials.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
	}
}
