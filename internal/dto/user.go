package dto

import (
	"time"

	"github.com/yukikurage/project-tracker/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsAdmin    bool      `json:"is_admin"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// FlashDTO is a one-shot message carried in the session to the next screen
type FlashDTO struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// MessageResponse confirms a form submission
type MessageResponse struct {
	Message string   `json:"message"`
	User    *UserDTO `json:"user,omitempty"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	User     UserDTO `json:"user"`
	Redirect string  `json:"redirect"`
}

// FormPageResponse is the content of the login and registration screens
type FormPageResponse struct {
	Flashes []FlashDTO `json:"flashes"`
}

// AdminUsersResponse is the content of the user management screen
type AdminUsersResponse struct {
	Users   []UserDTO  `json:"users"`
	Flashes []FlashDTO `json:"flashes"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		IsAdmin:    user.IsAdmin,
		IsApproved: user.IsApproved,
		CreatedAt:  user.CreatedAt,
	}
}

// ToUserDTOs converts a list of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}
