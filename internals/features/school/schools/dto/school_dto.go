// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/school/schools/model"
)

type CreateSchoolRequest struct {
	OrganizationID  uuid.UUID      `json:"school_organization_id" validate:"required"`
	Name            string         `json:"school_name" validate:"required,max=255"`
	Slug            string         `json:"school_slug" validate:"omitempty,max=120"`
	Motto           string         `json:"school_motto" validate:"omitempty,max=255"`
	Email           string         `json:"school_email" validate:"omitempty,email"`
	Phone           string         `json:"school_phone" validate:"omitempty,max=20"`
	Website         *string        `json:"school_website" validate:"omitempty,url"`
	Address         string         `json:"school_address" validate:"omitempty"`
	City            string         `json:"school_city" validate:"omitempty,max=100"`
	State           string         `json:"school_state" validate:"omitempty,max=100"`
	PostalCode      string         `json:"school_postal_code" validate:"omitempty,max=20"`
	EstablishedYear *int           `json:"school_established_year" validate:"omitempty,gte=1800,lte=2100"`
	PrincipalName   string         `json:"school_principal_name" validate:"omitempty,max=150"`
	Settings        datatypes.JSON `json:"school_settings" validate:"omitempty"`
}

type UpdateSchoolRequest struct {
	Name            *string         `json:"school_name" validate:"omitempty,max=255"`
	Motto           *string         `json:"school_motto" validate:"omitempty,max=255"`
	Email           *string         `json:"school_email" validate:"omitempty,email"`
	Phone           *string         `json:"school_phone" validate:"omitempty,max=20"`
	Website         *string         `json:"school_website" validate:"omitempty,url"`
	Address         *string         `json:"school_address" validate:"omitempty"`
	City            *string         `json:"school_city" validate:"omitempty,max=100"`
	State           *string         `json:"school_state" validate:"omitempty,max=100"`
	PostalCode      *string         `json:"school_postal_code" validate:"omitempty,max=20"`
	LogoURL         *string         `json:"school_logo_url" validate:"omitempty,url"`
	EstablishedYear *int            `json:"school_established_year" validate:"omitempty,gte=1800,lte=2100"`
	PrincipalName   *string         `json:"school_principal_name" validate:"omitempty,max=150"`
	IsActive        *bool           `json:"school_is_active" validate:"omitempty"`
	Settings        *datatypes.JSON `json:"school_settings" validate:"omitempty"`
}

func (r CreateSchoolRequest) ToModel() model.SchoolModel {
	return model.SchoolModel{
		SchoolOrganizationID:  r.OrganizationID,
		SchoolName:            strings.TrimSpace(r.Name),
		SchoolSlug:            strings.TrimSpace(r.Slug),
		SchoolMotto:           strings.TrimSpace(r.Motto),
		SchoolEmail:           strings.TrimSpace(strings.ToLower(r.Email)),
		SchoolPhone:           strings.TrimSpace(r.Phone),
		SchoolWebsite:         r.Website,
		SchoolAddress:         strings.TrimSpace(r.Address),
		SchoolCity:            strings.TrimSpace(r.City),
		SchoolState:           strings.TrimSpace(r.State),
		SchoolPostalCode:      strings.TrimSpace(r.PostalCode),
		SchoolEstablishedYear: r.EstablishedYear,
		SchoolPrincipalName:   strings.TrimSpace(r.PrincipalName),
		SchoolSettings:        r.Settings,
	}
}

func (r UpdateSchoolRequest) Apply(m *model.SchoolModel) {
	if r.Name != nil {
		m.SchoolName = strings.TrimSpace(*r.Name)
	}
	if r.Motto != nil {
		m.SchoolMotto = strings.TrimSpace(*r.Motto)
	}
	if r.Email != nil {
		m.SchoolEmail = strings.TrimSpace(strings.ToLower(*r.Email))
	}
	if r.Phone != nil {
		m.SchoolPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Website != nil {
		m.SchoolWebsite = r.Website
	}
	if r.Address != nil {
		m.SchoolAddress = strings.TrimSpace(*r.Address)
	}
	if r.City != nil {
		m.SchoolCity = strings.TrimSpace(*r.City)
	}
	if r.State != nil {
		m.SchoolState = strings.TrimSpace(*r.State)
	}
	if r.PostalCode != nil {
		m.SchoolPostalCode = strings.TrimSpace(*r.PostalCode)
	}
	if r.LogoURL != nil {
		m.SchoolLogoURL = r.LogoURL
	}
	if r.EstablishedYear != nil {
		m.SchoolEstablishedYear = r.EstablishedYear
	}
	if r.PrincipalName != nil {
		m.SchoolPrincipalName = strings.TrimSpace(*r.PrincipalName)
	}
	if r.IsActive != nil {
		m.SchoolIsActive = *r.IsActive
	}
	if r.Settings != nil {
		m.SchoolSettings = *r.Settings
	}
}
