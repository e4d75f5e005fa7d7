// file: internals/features/communications/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	"schoolhub_backend/internals/features/communications/events/model"
)

type CreateEventRequest struct {
	Title                string     `json:"event_title" validate:"required,max=255"`
	Slug                 string     `json:"event_slug" validate:"omitempty,max=160"`
	Description          string     `json:"event_description" validate:"omitempty"`
	Type                 string     `json:"event_type" validate:"omitempty,oneof=academic sports cultural holiday meeting other"`
	Location             string     `json:"event_location" validate:"omitempty,max=255"`
	StartAt              time.Time  `json:"event_start_at" validate:"required"`
	EndAt                *time.Time `json:"event_end_at" validate:"omitempty,gtfield=StartAt"`
	RegistrationRequired bool       `json:"event_registration_required"`
	RegistrationURL      *string    `json:"event_registration_url" validate:"omitempty,url"`
	RegistrationDeadline *time.Time `json:"event_registration_deadline"`
	IsPublished          bool       `json:"event_is_published"`
}

type UpdateEventRequest struct {
	Title                *string    `json:"event_title" validate:"omitempty,max=255"`
	Description          *string    `json:"event_description" validate:"omitempty"`
	Type                 *string    `json:"event_type" validate:"omitempty,oneof=academic sports cultural holiday meeting other"`
	Location             *string    `json:"event_location" validate:"omitempty,max=255"`
	StartAt              *time.Time `json:"event_start_at"`
	EndAt                *time.Time `json:"event_end_at"`
	RegistrationRequired *bool      `json:"event_registration_required" validate:"omitempty"`
	RegistrationURL      *string    `json:"event_registration_url" validate:"omitempty,url"`
	RegistrationDeadline *time.Time `json:"event_registration_deadline"`
	IsPublished          *bool      `json:"event_is_published" validate:"omitempty"`
}

func (r CreateEventRequest) ToModel() model.EventModel {
	typ := strings.TrimSpace(strings.ToLower(r.Type))
	if typ == "" {
		typ = model.EventTypeOther
	}
	return model.EventModel{
		EventTitle:                strings.TrimSpace(r.Title),
		EventSlug:                 strings.TrimSpace(r.Slug),
		EventDescription:          strings.TrimSpace(r.Description),
		EventType:                 typ,
		EventLocation:             strings.TrimSpace(r.Location),
		EventStartAt:              r.StartAt,
		EventEndAt:                r.EndAt,
		EventRegistrationRequired: r.RegistrationRequired,
		EventRegistrationURL:      r.RegistrationURL,
		EventRegistrationDeadline: r.RegistrationDeadline,
		EventIsPublished:          r.IsPublished,
	}
}
