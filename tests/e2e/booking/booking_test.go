//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/handler/dto/response"
	"amenity-booking/tests/common/authtest"
	"amenity-booking/tests/common/dbtest"
	"amenity-booking/tests/common/httptest"
	"amenity-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	bookingURL  = "/api/bookings/%s"
	cancelURL   = "/api/bookings/%s/cancel"
	approveURL  = "/api/bookings/%s/approve"
	spaceURL    = "/api/spaces/%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func createBody(spaceID uuid.UUID, start, end string) map[string]any {
	return map[string]any{
		"space_id": spaceID.String(),
		"start_at": start,
		"end_at":   end,
	}
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("正常系: オフセットを捨てて壁時計の数字を保持", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "resident@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Party Room", true)

		body := createBody(spaceID, "2030-05-01T09:00:00-05:00", "2030-05-01T11:00:00-05:00")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, resident.Token)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, resident.Token)
		var actual response.BookingResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &actual)

		total := int64(100000)
		expected := &response.BookingResponse{
			SpaceID:       spaceID.String(),
			SpaceName:     "Party Room",
			SpaceCategory: "social_hall",
			UserID:        resident.ID.String(),
			UserName:      "resident",
			UserEmail:     "resident@example.com",
			StartAt:       "2030-05-01T09:00:00",
			EndAt:         "2030-05-01T11:00:00",
			State:         "PENDING",
			TotalPrice:    &total,
			CreatedBy:     resident.ID.String(),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("正常系: 承認不要のスペースは即時確定", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "gym@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Gym", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBody(spaceID, "2030-05-01T06:00:00", "2030-05-01T07:00:00"), resident.Token)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "CONFIRMED", created.State)
	})

	s.Run("異常系: 同じ枠への同時予約は1件だけ成功", func() {
		t := s.T()
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Sauna", false)

		const racers = 8
		tokens := make([]string, racers)
		for i := range racers {
			tokens[i] = authtest.CreateIdentity(t, s.DB, s.Config.JWT, fmt.Sprintf("racer%d@example.com", i), authz.RoleResident).Token
		}

		body := createBody(spaceID, "2030-06-01T18:00:00", "2030-06-01T20:00:00")
		recs := make([]*nethttptest.ResponseRecorder, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				recs[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, tokens[i])
			}(i)
		}
		wg.Wait()

		codes := map[int]int{}
		for _, rec := range recs {
			codes[rec.Code]++
		}
		require.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: racers - 1}, codes)
	})

	s.Run("正常系: usersに存在しない管理者でも代理予約できる", func() {
		t := s.T()
		adminToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), authz.RoleAdmin)
		resident := dbtest.CreateTestUser(t, s.DB, "proxied@example.com", "resident")
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Social Hall", true)

		body := createBody(spaceID, "2030-05-03T12:00:00", "2030-05-03T14:00:00")
		body["requester_id"] = resident.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, adminToken)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, resident.String(), created.UserID)
	})

	s.Run("異常系: 住民は他人の代理予約不可", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "proxy@example.com", authz.RoleResident)
		other := dbtest.CreateTestUser(t, s.DB, "other@example.com", "resident")
		spaceID := dbtest.CreateTestSpace(t, s.DB, "BBQ", true)

		body := createBody(spaceID, "2030-05-02T12:00:00", "2030-05-02T14:00:00")
		body["requester_id"] = other.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, resident.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("異常系: 過去の開始時刻は拒否", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "late@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Court", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBody(spaceID, "2020-01-01T09:00:00", "2020-01-01T10:00:00"), resident.Token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "BAD_REQUEST")
	})
}

// =============================================================================
// TestIdempotencyKey
// =============================================================================

func (s *BookingSuite) TestIdempotencyKey() {
	s.Run("同じキーと本文の再送は最初の予約を返す", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "retry@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Event House", true)
		headers := map[string]string{"Idempotency-Key": uuid.New().String()}
		body := createBody(spaceID, "2030-07-01T10:00:00", "2030-07-01T12:00:00")

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers, resident.Token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers, resident.Token)
		var replayed response.BookingResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
		require.Equal(t, created.ID, replayed.ID)

		body["end_at"] = "2030-07-01T13:00:00"
		third := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers, resident.Token)
		httptest.AssertErrorKind(t, third, http.StatusConflict, "CONFLICT")
	})
}

// =============================================================================
// TestLifecycle
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("異常系: 住民は自分の予約を承認できない", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "self@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Hall", true)
		start := time.Date(2030, 8, 1, 9, 0, 0, 0, time.UTC)
		bookingID := dbtest.CreateTestBooking(t, s.DB, spaceID, resident.ID, start, start.Add(2*time.Hour), "PENDING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, bookingID),
			map[string]any{"state": "CONFIRMED"}, resident.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")
		require.Equal(t, "PENDING", dbtest.BookingStatus(t, s.DB, bookingID))
	})

	s.Run("正常系: キャンセルは冪等", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "cancel@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Pool", true)
		start := time.Date(2030, 8, 2, 9, 0, 0, 0, time.UTC)
		bookingID := dbtest.CreateTestBooking(t, s.DB, spaceID, resident.ID, start, start.Add(time.Hour), "CONFIRMED")

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, bookingID), nil, resident.Token)
			var res response.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, "CANCELLED", res.State)
		}
	})

	s.Run("正常系: キャンセル後は同じ枠を再予約できる", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "rebook@example.com", authz.RoleResident)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Parking", false)
		start := time.Date(2030, 8, 3, 9, 0, 0, 0, time.UTC)
		dbtest.CreateTestBooking(t, s.DB, spaceID, resident.ID, start, start.Add(time.Hour), "CANCELLED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBody(spaceID, "2030-08-03T09:00:00", "2030-08-03T10:00:00"), resident.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
	})

	s.Run("異常系: キャンセルと承認が同時でもキャンセルが上書きされない", func() {
		t := s.T()
		resident := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "race-owner@example.com", authz.RoleResident)
		admin := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "race-admin@example.com", authz.RoleAdmin)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Gym", true)

		const rounds = 5
		for i := range rounds {
			start := time.Date(2030, 9, 1+i, 9, 0, 0, 0, time.UTC)
			bookingID := dbtest.CreateTestBooking(t, s.DB, spaceID, resident.ID, start, start.Add(time.Hour), "PENDING")

			var cancelRec, approveRec *nethttptest.ResponseRecorder
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				cancelRec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, bookingID), nil, resident.Token)
			}()
			go func() {
				defer wg.Done()
				approveRec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, bookingID), nil, admin.Token)
			}()
			wg.Wait()

			require.Equal(t, http.StatusOK, cancelRec.Code, cancelRec.Body.String())
			require.Contains(t, []int{http.StatusOK, http.StatusUnprocessableEntity}, approveRec.Code, approveRec.Body.String())
			require.Equal(t, "CANCELLED", dbtest.BookingStatus(t, s.DB, bookingID))
		}
	})
}

// =============================================================================
// TestDeleteSpace
// =============================================================================

func (s *BookingSuite) TestDeleteSpace() {
	s.Run("異常系: 有効な予約があるスペースは削除不可", func() {
		t := s.T()
		admin := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "admin@example.com", authz.RoleAdmin)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Busy Room", true)
		start := time.Date(2030, 9, 1, 9, 0, 0, 0, time.UTC)
		dbtest.CreateTestBooking(t, s.DB, spaceID, admin.ID, start, start.Add(time.Hour), "CONFIRMED")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(spaceURL, spaceID), nil, admin.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "1 active booking(s)")
	})

	s.Run("正常系: 予約のないスペースは削除できる", func() {
		t := s.T()
		admin := authtest.CreateIdentity(t, s.DB, s.Config.JWT, "admin2@example.com", authz.RoleAdmin)
		spaceID := dbtest.CreateTestSpace(t, s.DB, "Empty Room", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(spaceURL, spaceID), nil, admin.Token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}
