package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

var (
	testNow    = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	testWindow = domain.OperatingWindow{
		Open:        "07:30",
		Close:       "19:00",
		SlotMinutes: 30,
	}
)

func activeFacility() *domain.Facility {
	return &domain.Facility{
		ID:       10,
		Name:     "Room A",
		Class:    domain.ClassStandard,
		Capacity: 8,
		Active:   true,
	}
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		UserID:       1,
		FacilityID:   10,
		StartTime:    testNow.Add(time.Hour), // 10:00
		EndTime:      testNow.Add(2 * time.Hour),
		Participants: 4,
	}
}

func titles(errs []domain.ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Title
	}
	return out
}

func TestValidate_ValidDraftPasses(t *testing.T) {
	errs := Validate(validDraft(), activeFacility(), testWindow, testNow)
	assert.Empty(t, errs)
}

func TestValidate_StartInPast(t *testing.T) {
	draft := validDraft()
	draft.StartTime = testNow.Add(-time.Hour)
	draft.EndTime = testNow.Add(time.Hour)

	errs := Validate(draft, activeFacility(), testWindow, testNow)
	assert.Contains(t, titles(errs), TitleStartInPast)
}

func TestValidate_NilFacilityReportsUnavailable(t *testing.T) {
	errs := Validate(validDraft(), nil, testWindow, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, TitleFacilityUnavailable, errs[0].Title)
}

func TestValidate_InactiveFacility(t *testing.T) {
	fac := activeFacility()
	fac.Active = false

	errs := Validate(validDraft(), fac, testWindow, testNow)
	assert.Contains(t, titles(errs), TitleFacilityUnavailable)
}

func TestValidate_EndNotAfterStart(t *testing.T) {
	draft := validDraft()
	draft.EndTime = draft.StartTime

	errs := Validate(draft, activeFacility(), testWindow, testNow)
	got := titles(errs)
	assert.Contains(t, got, TitleEndNotAfterStart)
	// При вырожденном диапазоне длительность не определена и не проверяется
	assert.NotContains(t, got, TitleDurationOutOfRange)
}

func TestValidate_CrossesMidnight(t *testing.T) {
	draft := validDraft()
	draft.StartTime = time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	draft.EndTime = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	errs := Validate(draft, activeFacility(), testWindow, testNow)
	assert.Contains(t, titles(errs), TitleCrossesMidnight)
}

func TestValidate_OutsideOperatingHours(t *testing.T) {
	draft := validDraft()
	draft.StartTime = time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
	draft.EndTime = time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)

	errs := Validate(draft, activeFacility(), testWindow, testNow)
	assert.Contains(t, titles(errs), TitleOutsideHours)
}

func TestValidate_DurationOutOfRange(t *testing.T) {
	// Standard: максимум 240 минут
	draft := validDraft()
	draft.StartTime = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	draft.EndTime = time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

	errs := Validate(draft, activeFacility(), testWindow, testNow)
	assert.Contains(t, titles(errs), TitleDurationOutOfRange)

	// Conference: 300 минут допустимы
	fac := activeFacility()
	fac.Class = domain.ClassConference
	errs = Validate(draft, fac, testWindow, testNow)
	assert.NotContains(t, titles(errs), TitleDurationOutOfRange)
}

func TestValidate_OverCapacity(t *testing.T) {
	draft := validDraft()
	draft.Participants = 9

	errs := Validate(draft, activeFacility(), testWindow, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, TitleOverCapacity, errs[0].Title)
	assert.Contains(t, errs[0].Description, "capacity 8")
}

func TestValidate_PurposeRequired(t *testing.T) {
	fac := activeFacility()
	fac.RequiresPurpose = true

	draft := validDraft()
	errs := Validate(draft, fac, testWindow, testNow)
	assert.Contains(t, titles(errs), TitlePurposeRequired)

	// Пустая строка равносильна отсутствию
	draft.Purpose = ptr.Ptr("")
	errs = Validate(draft, fac, testWindow, testNow)
	assert.Contains(t, titles(errs), TitlePurposeRequired)

	draft.Purpose = ptr.Ptr("standup")
	errs = Validate(draft, fac, testWindow, testNow)
	assert.NotContains(t, titles(errs), TitlePurposeRequired)
}

func TestValidate_CollectsAllViolationsWithoutShortCircuit(t *testing.T) {
	// Начало в прошлом И превышение вместимости: обе ошибки за один проход
	draft := validDraft()
	draft.StartTime = testNow.Add(-2 * time.Hour)
	draft.EndTime = testNow.Add(-time.Hour)
	draft.Participants = 20

	errs := Validate(draft, activeFacility(), testWindow, testNow)

	got := titles(errs)
	assert.Contains(t, got, TitleStartInPast)
	assert.Contains(t, got, TitleOverCapacity)
	assert.GreaterOrEqual(t, len(errs), 2)
}
