// Package validation contains the pure booking rule engine. It is
// stateless, deterministic and never returns through an error channel:
// every applicable rule is evaluated and all failures are reported
// together, in a fixed order, so users see every problem at once.
package validation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Rule titles are fixed; descriptions carry the offending values.
const (
	TitleStartInPast         = "Start time is in the past"
	TitleFacilityUnavailable = "Facility is not available"
	TitleEndNotAfterStart    = "End time must be after start time"
	TitleCrossesMidnight     = "Booking must start and end on the same day"
	TitleOutsideHours        = "Outside operating hours"
	TitleDurationOutOfRange  = "Booking duration out of range"
	TitleOverCapacity        = "Capacity exceeded"
	TitlePurposeRequired     = "Purpose is required"
)

// Validate проверяет черновик бронирования по всем правилам подряд,
// без короткого замыкания. facility может быть nil (помещение не найдено) —
// в этом случае правила, зависящие от помещения, пропускаются как неприменимые.
func Validate(draft domain.BookingDraft, facility *domain.Facility, window domain.OperatingWindow, now time.Time) []domain.ValidationError {
	errs := make([]domain.ValidationError, 0)

	// 1. Начало не в прошлом
	if draft.StartTime.Before(now) {
		errs = append(errs, domain.ValidationError{
			Title: TitleStartInPast,
			Description: fmt.Sprintf("start time %s is before the current time %s",
				draft.StartTime.Format(time.RFC3339), now.Format(time.RFC3339)),
		})
	}

	// 2. Помещение существует и активно
	if facility == nil {
		errs = append(errs, domain.ValidationError{
			Title:       TitleFacilityUnavailable,
			Description: fmt.Sprintf("facility %d does not exist", draft.FacilityID),
		})
	} else if !facility.Active {
		errs = append(errs, domain.ValidationError{
			Title:       TitleFacilityUnavailable,
			Description: fmt.Sprintf("facility %q is inactive", facility.Name),
		})
	}

	// 3. Конец строго позже начала
	endAfterStart := draft.EndTime.After(draft.StartTime)
	if !endAfterStart {
		errs = append(errs, domain.ValidationError{
			Title: TitleEndNotAfterStart,
			Description: fmt.Sprintf("end time %s is not after start time %s",
				draft.EndTime.Format(time.RFC3339), draft.StartTime.Format(time.RFC3339)),
		})
	}

	// 4. Начало и конец в пределах одного календарного дня
	if !domain.SameDay(draft.StartTime, draft.EndTime) {
		errs = append(errs, domain.ValidationError{
			Title: TitleCrossesMidnight,
			Description: fmt.Sprintf("booking spans %s to %s",
				draft.StartTime.Format(domain.DateFormat), draft.EndTime.Format(domain.DateFormat)),
		})
	}

	// 5. Диапазон внутри окна работы
	if !window.Contains(draft.StartTime, draft.EndTime) {
		errs = append(errs, domain.ValidationError{
			Title: TitleOutsideHours,
			Description: fmt.Sprintf("bookings are only allowed between %s and %s",
				window.Open, window.Close),
		})
	}

	// 6. Длительность в пределах политики класса помещения.
	// Проверяется только при корректном диапазоне, иначе длительность не определена.
	if facility != nil && endAfterStart {
		policy := facility.DurationPolicy()
		minutes := int(draft.EndTime.Sub(draft.StartTime) / time.Minute)
		if minutes < policy.MinMinutes || minutes > policy.MaxMinutes {
			errs = append(errs, domain.ValidationError{
				Title: TitleDurationOutOfRange,
				Description: fmt.Sprintf("duration %d min must be between %d and %d min",
					minutes, policy.MinMinutes, policy.MaxMinutes),
			})
		}
	}

	// 7. Число участников не превышает вместимость
	if facility != nil && draft.Participants > facility.Capacity {
		errs = append(errs, domain.ValidationError{
			Title: TitleOverCapacity,
			Description: fmt.Sprintf("capacity %d exceeded by %d participants",
				facility.Capacity, draft.Participants),
		})
	}

	// 8. Цель бронирования обязательна, если помещение этого требует
	if facility != nil && facility.RequiresPurpose {
		if draft.Purpose == nil || *draft.Purpose == "" {
			errs = append(errs, domain.ValidationError{
				Title:       TitlePurposeRequired,
				Description: fmt.Sprintf("facility %q requires a booking purpose", facility.Name),
			})
		}
	}

	return errs
}
