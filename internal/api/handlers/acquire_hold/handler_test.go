package acquire_hold

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	acquireHold "github.com/m04kA/SMC-RoomBookingService/internal/usecase/acquire_hold"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *acquireHold.Response
	err  error

	gotReq *acquireHold.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *acquireHold.Request) (*acquireHold.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, fakeLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/holds", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/holds", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAcquireHoldHandler_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &acquireHold.Response{
			Hold: domain.SlotHold{
				ID:         "hold-1",
				FacilityID: 10,
				OwnerID:    1,
				StartTime:  testNow.Add(time.Hour),
				EndTime:    testNow.Add(2 * time.Hour),
				ExpiresAt:  testNow.Add(2 * time.Minute),
			},
			RefreshAfter: testNow.Add(90 * time.Second),
		},
	}
	router := newTestRouter(uc)

	body := `{"facilityId":10,"startTime":"2025-06-02T11:00:00Z","endTime":"2025-06-02T12:00:00Z"}`
	rec := doRequest(t, router, body, "1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HoldResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hold-1", resp.ID)
	assert.Equal(t, int64(10), resp.FacilityID)
	assert.True(t, resp.ExpiresAt.Equal(testNow.Add(2*time.Minute)))
	assert.True(t, resp.RefreshAfter.Equal(testNow.Add(90*time.Second)))

	// Идентичность берётся из заголовка, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.OwnerID)
}

func TestAcquireHoldHandler_HoldHeldConflict(t *testing.T) {
	retryAfter := testNow.Add(time.Minute)
	uc := &fakeUseCase{
		err: &acquireHold.HoldHeldError{FacilityID: 10, RetryAfter: retryAfter},
	}
	router := newTestRouter(uc)

	body := `{"facilityId":10,"startTime":"2025-06-02T11:00:00Z","endTime":"2025-06-02T12:00:00Z"}`
	rec := doRequest(t, router, body, "2")

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hold_held", resp.Kind)
	require.NotNil(t, resp.RetryAfter)
	assert.True(t, resp.RetryAfter.Equal(retryAfter))
	assert.Empty(t, resp.Conflicts)
}

func TestAcquireHoldHandler_BookingExistsConflict(t *testing.T) {
	uc := &fakeUseCase{
		err: &acquireHold.BookingExistsError{
			FacilityID: 10,
			Bookings: []acquireHold.ConflictingBooking{
				{
					ID:        42,
					StartTime: testNow.Add(time.Hour),
					EndTime:   testNow.Add(2 * time.Hour),
					Status:    domain.StatusApproved,
				},
			},
		},
	}
	router := newTestRouter(uc)

	body := `{"facilityId":10,"startTime":"2025-06-02T11:00:00Z","endTime":"2025-06-02T12:00:00Z"}`
	rec := doRequest(t, router, body, "2")

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking_exists", resp.Kind)
	assert.Nil(t, resp.RetryAfter)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(42), resp.Conflicts[0].BookingID)
	assert.Equal(t, string(domain.StatusApproved), resp.Conflicts[0].Status)
}

func TestAcquireHoldHandler_MissingUserHeader(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := doRequest(t, router, `{"facilityId":10}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAcquireHoldHandler_InvalidTimeFormat(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	body := `{"facilityId":10,"startTime":"tomorrow","endTime":"2025-06-02T12:00:00Z"}`
	rec := doRequest(t, router, body, "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcquireHoldHandler_HoldNotFound(t *testing.T) {
	uc := &fakeUseCase{err: acquireHold.ErrHoldNotFound}
	router := newTestRouter(uc)

	rec := doRequest(t, router, `{"holdId":"missing"}`, "1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHoldResponse_SurvivesJSONBoundary(t *testing.T) {
	resp := HoldResponse{
		ID:         "hold-1",
		FacilityID: 10,
		OwnerID:    1,
		StartTime:  testNow.Add(time.Hour),
		EndTime:    testNow.Add(2 * time.Hour),
		ExpiresAt:  testNow.Add(2 * time.Minute),
	}

	raw, err := json.Marshal(&resp)
	require.NoError(t, err)

	var decoded HoldResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, resp.ToDomainHold(), decoded.ToDomainHold())
}
