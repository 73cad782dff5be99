package acquire_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/holdstore"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

const (
	testTTL   = 2 * time.Minute
	testGrace = 30 * time.Second
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeConflictFinder struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeConflictFinder) FindOverlapping(context.Context, int64, time.Time, time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

func newTestUseCase(holds *holdstore.Store, conflicts ConflictFinder, clock *fixedTime) *UseCase {
	return NewUseCase(holds, conflicts, testTTL, testGrace, fakeLogger{}).WithTimeProvider(clock)
}

func acquireRequest(ownerID int64) *Request {
	return &Request{
		FacilityID: ptr.Ptr(int64(10)),
		StartTime:  ptr.Ptr(testNow.Add(time.Hour)),
		EndTime:    ptr.Ptr(testNow.Add(2 * time.Hour)),
		OwnerID:    ownerID,
	}
}

func TestAcquireHold_FreeSlot(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	resp, err := uc.Execute(context.Background(), acquireRequest(1))

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Hold.ID)
	assert.Equal(t, int64(10), resp.Hold.FacilityID)
	assert.Equal(t, int64(1), resp.Hold.OwnerID)
	assert.Equal(t, testNow.Add(testTTL), resp.Hold.ExpiresAt)
	assert.Equal(t, testNow.Add(testTTL).Add(-testGrace), resp.RefreshAfter)

	_, ok := holds.Get(resp.Hold.ID, testNow)
	assert.True(t, ok)
}

func TestAcquireHold_ConflictWithLiveHold(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	first, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), acquireRequest(2))

	var heldErr *HoldHeldError
	require.ErrorAs(t, err, &heldErr)
	assert.Equal(t, int64(10), heldErr.FacilityID)
	assert.Equal(t, first.Hold.ExpiresAt, heldErr.RetryAfter)
}

func TestAcquireHold_ExpiredHoldDoesNotBlock(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	_, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	// Первый hold истёк, второй владелец занимает слот
	clock.now = testNow.Add(testTTL).Add(time.Second)
	resp, err := uc.Execute(context.Background(), acquireRequest(2))

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Hold.OwnerID)
}

func TestAcquireHold_ConflictWithPersistedBooking(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	conflicts := &fakeConflictFinder{
		bookings: []*domain.Booking{
			{
				ID:        42,
				StartTime: testNow.Add(time.Hour),
				EndTime:   testNow.Add(2 * time.Hour),
				Status:    domain.StatusApproved,
			},
		},
	}
	uc := newTestUseCase(holds, conflicts, clock)

	_, err := uc.Execute(context.Background(), acquireRequest(1))

	var existsErr *BookingExistsError
	require.ErrorAs(t, err, &existsErr)
	require.Len(t, existsErr.Bookings, 1)
	assert.Equal(t, int64(42), existsErr.Bookings[0].ID)
	assert.Equal(t, domain.StatusApproved, existsErr.Bookings[0].Status)
}

func TestAcquireHold_NewHoldEvictsPriorHoldOfOwner(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	first, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	req := &Request{
		FacilityID: ptr.Ptr(int64(11)),
		StartTime:  ptr.Ptr(testNow.Add(3 * time.Hour)),
		EndTime:    ptr.Ptr(testNow.Add(4 * time.Hour)),
		OwnerID:    1,
	}
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, ok := holds.Get(first.Hold.ID, testNow)
	assert.False(t, ok, "prior hold of the owner must be evicted")
	_, ok = holds.Get(second.Hold.ID, testNow)
	assert.True(t, ok)
	assert.Equal(t, 1, holds.Len())
}

func TestAcquireHold_RefreshExtendsSameSlot(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	first, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	// Продление: только HoldID и OwnerID, слот берётся из существующего hold'а
	clock.now = testNow.Add(time.Minute)
	refreshed, err := uc.Execute(context.Background(), &Request{
		HoldID:  ptr.Ptr(first.Hold.ID),
		OwnerID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, first.Hold.ID, refreshed.Hold.ID)
	assert.Equal(t, first.Hold.CreatedAt, refreshed.Hold.CreatedAt)
	assert.Equal(t, first.Hold.StartTime, refreshed.Hold.StartTime)
	assert.Equal(t, first.Hold.EndTime, refreshed.Hold.EndTime)
	assert.Equal(t, clock.now.Add(testTTL), refreshed.Hold.ExpiresAt)
	assert.Equal(t, clock.now, refreshed.Hold.RefreshedAt)
}

func TestAcquireHold_RefreshExpiredHoldFails(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	first, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	clock.now = testNow.Add(testTTL).Add(time.Second)
	_, err = uc.Execute(context.Background(), &Request{
		HoldID:  ptr.Ptr(first.Hold.ID),
		OwnerID: 1,
	})

	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestAcquireHold_RefreshForeignHoldForbidden(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	first, err := uc.Execute(context.Background(), acquireRequest(1))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		HoldID:  ptr.Ptr(first.Hold.ID),
		OwnerID: 2,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAcquireHold_EmptyRangeRejected(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	req := acquireRequest(1)
	req.EndTime = req.StartTime

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAcquireHold_MissingFieldsForNewHoldRejected(t *testing.T) {
	holds := holdstore.New()
	clock := &fixedTime{now: testNow}
	uc := newTestUseCase(holds, &fakeConflictFinder{}, clock)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
