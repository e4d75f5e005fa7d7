// file: internals/features/tenants/organizations/dto/organization_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/tenants/organizations/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateOrganizationRequest struct {
	Name       string         `json:"organization_name" validate:"required,max=255"`
	Slug       string         `json:"organization_slug" validate:"omitempty,max=120"`
	Domain     *string        `json:"organization_domain" validate:"omitempty,max=255"`
	Email      string         `json:"organization_email" validate:"required,email"`
	Phone      string         `json:"organization_phone" validate:"omitempty,max=20"`
	Address    string         `json:"organization_address" validate:"omitempty"`
	City       string         `json:"organization_city" validate:"omitempty,max=100"`
	State      string         `json:"organization_state" validate:"omitempty,max=100"`
	Country    string         `json:"organization_country" validate:"omitempty,max=100"`
	PostalCode string         `json:"organization_postal_code" validate:"omitempty,max=20"`
	Settings   datatypes.JSON `json:"organization_settings" validate:"omitempty"`
}

type UpdateOrganizationRequest struct {
	Name       *string         `json:"organization_name" validate:"omitempty,max=255"`
	Domain     *string         `json:"organization_domain" validate:"omitempty,max=255"`
	Email      *string         `json:"organization_email" validate:"omitempty,email"`
	Phone      *string         `json:"organization_phone" validate:"omitempty,max=20"`
	Address    *string         `json:"organization_address" validate:"omitempty"`
	City       *string         `json:"organization_city" validate:"omitempty,max=100"`
	State      *string         `json:"organization_state" validate:"omitempty,max=100"`
	Country    *string         `json:"organization_country" validate:"omitempty,max=100"`
	PostalCode *string         `json:"organization_postal_code" validate:"omitempty,max=20"`
	IsActive   *bool           `json:"organization_is_active" validate:"omitempty"`
	IsVerified *bool           `json:"organization_is_verified" validate:"omitempty"`
	Settings   *datatypes.JSON `json:"organization_settings" validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type OrganizationResponse struct {
	ID         uuid.UUID      `json:"organization_id"`
	Name       string         `json:"organization_name"`
	Slug       string         `json:"organization_slug"`
	Domain     *string        `json:"organization_domain,omitempty"`
	Email      string         `json:"organization_email"`
	Phone      string         `json:"organization_phone,omitempty"`
	Address    string         `json:"organization_address,omitempty"`
	City       string         `json:"organization_city,omitempty"`
	State      string         `json:"organization_state,omitempty"`
	Country    string         `json:"organization_country"`
	PostalCode string         `json:"organization_postal_code,omitempty"`
	IsActive   bool           `json:"organization_is_active"`
	IsVerified bool           `json:"organization_is_verified"`
	Settings   datatypes.JSON `json:"organization_settings,omitempty"`
	CreatedAt  time.Time      `json:"organization_created_at"`
	UpdatedAt  *time.Time     `json:"organization_updated_at,omitempty"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func (r CreateOrganizationRequest) ToModel() model.OrganizationModel {
	country := strings.TrimSpace(r.Country)
	if country == "" {
		country = "India"
	}
	return model.OrganizationModel{
		OrganizationName:       strings.TrimSpace(r.Name),
		OrganizationSlug:       strings.TrimSpace(r.Slug),
		OrganizationDomain:     trimPtr(r.Domain),
		OrganizationEmail:      strings.TrimSpace(strings.ToLower(r.Email)),
		OrganizationPhone:      strings.TrimSpace(r.Phone),
		OrganizationAddress:    strings.TrimSpace(r.Address),
		OrganizationCity:       strings.TrimSpace(r.City),
		OrganizationState:      strings.TrimSpace(r.State),
		OrganizationCountry:    country,
		OrganizationPostalCode: strings.TrimSpace(r.PostalCode),
		OrganizationSettings:   r.Settings,
	}
}

func (r UpdateOrganizationRequest) Apply(m *model.OrganizationModel) {
	if r.Name != nil {
		m.OrganizationName = strings.TrimSpace(*r.Name)
	}
	if r.Domain != nil {
		m.OrganizationDomain = trimPtr(r.Domain)
	}
	if r.Email != nil {
		m.OrganizationEmail = strings.TrimSpace(strings.ToLower(*r.Email))
	}
	if r.Phone != nil {
		m.OrganizationPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Address != nil {
		m.OrganizationAddress = strings.TrimSpace(*r.Address)
	}
	if r.City != nil {
		m.OrganizationCity = strings.TrimSpace(*r.City)
	}
	if r.State != nil {
		m.OrganizationState = strings.TrimSpace(*r.State)
	}
	if r.Country != nil {
		m.OrganizationCountry = strings.TrimSpace(*r.Country)
	}
	if r.PostalCode != nil {
		m.OrganizationPostalCode = strings.TrimSpace(*r.PostalCode)
	}
	if r.IsActive != nil {
		m.OrganizationIsActive = *r.IsActive
	}
	if r.IsVerified != nil {
		m.OrganizationIsVerified = *r.IsVerified
	}
	if r.Settings != nil {
		m.OrganizationSettings = *r.Settings
	}
}

func FromOrganizationModel(m model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		ID:         m.OrganizationID,
		Name:       m.OrganizationName,
		Slug:       m.OrganizationSlug,
		Domain:     m.OrganizationDomain,
		Email:      m.OrganizationEmail,
		Phone:      m.OrganizationPhone,
		Address:    m.OrganizationAddress,
		City:       m.OrganizationCity,
		State:      m.OrganizationState,
		Country:    m.OrganizationCountry,
		PostalCode: m.OrganizationPostalCode,
		IsActive:   m.OrganizationIsActive,
		IsVerified: m.OrganizationIsVerified,
		Settings:   m.OrganizationSettings,
		CreatedAt:  m.OrganizationCreatedAt,
		UpdatedAt:  m.OrganizationUpdatedAt,
	}
}

func FromOrganizationModels(ms []model.OrganizationModel) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromOrganizationModel(m))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
