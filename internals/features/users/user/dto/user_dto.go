// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/users/user/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

// CreateUserRequest provisions the account and its tenant profile in one
// call; the two rows are written in a single transaction.
type CreateUserRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	IsStaff   bool   `json:"is_staff"`

	RoleID         uuid.UUID  `json:"profile_role_id" validate:"required"`
	SchoolID       *uuid.UUID `json:"profile_school_id" validate:"omitempty"`
	Phone          string     `json:"profile_phone" validate:"omitempty,max=20"`
	Gender         string     `json:"profile_gender" validate:"omitempty,oneof=male female other"`
	Address        string     `json:"profile_address" validate:"omitempty"`
	EmployeeNumber *string    `json:"profile_employee_number" validate:"omitempty,max=50"`
	DateOfBirth    *time.Time `json:"profile_date_of_birth" validate:"omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(strings.ToLower(r.UserName))
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active" validate:"omitempty"`
	IsStaff   *bool   `json:"is_staff" validate:"omitempty"`

	RoleID         *uuid.UUID `json:"profile_role_id" validate:"omitempty"`
	SchoolID       *uuid.UUID `json:"profile_school_id" validate:"omitempty"`
	Phone          *string    `json:"profile_phone" validate:"omitempty,max=20"`
	Gender         *string    `json:"profile_gender" validate:"omitempty,oneof=male female other"`
	Address        *string    `json:"profile_address" validate:"omitempty"`
	AvatarURL      *string    `json:"profile_avatar_url" validate:"omitempty,url"`
	EmployeeNumber *string    `json:"profile_employee_number" validate:"omitempty,max=50"`
	DateOfBirth    *time.Time `json:"profile_date_of_birth" validate:"omitempty"`
	ProfileActive  *bool      `json:"profile_is_active" validate:"omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"omitempty"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserName    string     `json:"user_name"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	Profile *ProfileResponse `json:"profile,omitempty"`
}

type ProfileResponse struct {
	ProfileID      uuid.UUID  `json:"profile_id"`
	OrganizationID uuid.UUID  `json:"profile_organization_id"`
	SchoolID       *uuid.UUID `json:"profile_school_id,omitempty"`
	RoleID         uuid.UUID  `json:"profile_role_id"`
	RoleSlug       string     `json:"role_slug,omitempty"`
	Phone          string     `json:"profile_phone,omitempty"`
	AvatarURL      *string    `json:"profile_avatar_url,omitempty"`
	Gender         string     `json:"profile_gender,omitempty"`
	Address        string     `json:"profile_address,omitempty"`
	EmployeeNumber *string    `json:"profile_employee_number,omitempty"`
	DateOfBirth    *time.Time `json:"profile_date_of_birth,omitempty"`
	IsActive       bool       `json:"profile_is_active"`
}

func FromUserModel(u model.UserModel, p *model.UserProfileModel, roleSlug string) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
	if p != nil {
		resp.Profile = &ProfileResponse{
			ProfileID:      p.ProfileID,
			OrganizationID: p.ProfileOrganizationID,
			SchoolID:       p.ProfileSchoolID,
			RoleID:         p.ProfileRoleID,
			RoleSlug:       roleSlug,
			Phone:          p.ProfilePhone,
			AvatarURL:      p.ProfileAvatarURL,
			Gender:         p.ProfileGender,
			Address:        p.ProfileAddress,
			EmployeeNumber: p.ProfileEmployeeNumber,
			DateOfBirth:    p.ProfileDateOfBirth,
			IsActive:       p.ProfileIsActive,
		}
	}
	return resp
}
