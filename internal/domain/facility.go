package domain

import "time"

// FacilityClass groups facilities that share a booking duration policy
type FacilityClass string

const (
	ClassStandard   FacilityClass = "standard"
	ClassConference FacilityClass = "conference"
)

// Facility represents a bookable room
type Facility struct {
	ID              int64
	Name            string
	Class           FacilityClass
	Capacity        int
	Active          bool
	RequiresPurpose bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationPolicy bounds the allowed length of a booking.
type DurationPolicy struct {
	MinMinutes int
	MaxMinutes int
}

// DurationPolicy returns the duration bounds for the facility's class.
func (f *Facility) DurationPolicy() DurationPolicy {
	switch f.Class {
	case ClassConference:
		return DurationPolicy{
			MinMinutes: ConferenceMinDurationMinutes,
			MaxMinutes: ConferenceMaxDurationMinutes,
		}
	default:
		return DurationPolicy{
			MinMinutes: StandardMinDurationMinutes,
			MaxMinutes: StandardMaxDurationMinutes,
		}
	}
}
