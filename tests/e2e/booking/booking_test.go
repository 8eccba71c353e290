//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"office-booking/internal/handler/dto/response"
	"office-booking/tests/common/authtest"
	"office-booking/tests/common/dbtest"
	"office-booking/tests/common/httptest"
	"office-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	visitsURL            = "/api/offices/%s/visits"
	myVisitsURL          = "/api/visits"
	visitStatusURL       = "/api/visits/%s/status"
	roomReservationsURL  = "/api/offices/%s/room-reservations"
	roomListURL          = "/api/offices/%s/rooms/%s/reservations?date=%s"
	reservationStatusURL = "/api/room-reservations/%s/status"
	roomTimeSlotsURL     = "/api/offices/%s/rooms/%s/time-slots?date=%s"
	freeDesksURL         = "/api/offices/%s/free-desks?dates=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// upcomingWorkday returns the nth Monday-to-Friday day after today, as the
// office-local date string the API takes. The suite office runs on UTC.
func upcomingWorkday(n int) string {
	d := time.Now().UTC()
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			n--
		}
	}
	return d.Format("2006-01-02")
}

func visitBody(areaID, deskID uuid.UUID, dates ...string) map[string]any {
	return map[string]any{
		"bookings": []map[string]any{
			{"area_id": areaID.String(), "desk_id": deskID.String(), "dates": dates},
		},
	}
}

func reservationBody(roomID uuid.UUID, date, slot string) map[string]any {
	return map[string]any{
		"room_id":   roomID.String(),
		"date":      date,
		"time_slot": slot,
	}
}

// =============================================================================
// Desk visits
// =============================================================================

func (s *BookingSuite) TestCreateVisits() {
	url := fmt.Sprintf(visitsURL, s.Fixture.OfficeID)

	s.Run("Normal case: user books one desk for two days", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, nil)

		body := visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(1), upcomingWorkday(2))
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, token)

		var created response.CreateVisitsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		s.Len(created.VisitIDs, 2)
		s.Equal(2, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, myVisitsURL, nil, token)
		var visits []response.VisitResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &visits)
		s.Len(visits, 2)
		s.Equal("confirmed", visits[0].Status)
	})

	s.Run("Error case: a single conflicted date rejects the whole batch", func() {
		t := s.T()
		holder := s.jwt.GenerateToken(t, uuid.New(), nil)
		date2 := upcomingWorkday(2)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], date2), holder)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		challenger := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(1), date2, upcomingWorkday(3)), challenger)

		var conflictResp struct {
			Error     string `json:"error"`
			Conflicts []struct {
				Desk string `json:"desk"`
				Date string `json:"date"`
			} `json:"conflicts"`
		}
		s.Equal(http.StatusConflict, rec.Code)
		httptest.DecodeResponseBody(t, rec.Body, &conflictResp)
		s.Len(conflictResp.Conflicts, 1)
		s.Equal("Desk 1", conflictResp.Conflicts[0].Desk)
		s.Equal(date2, conflictResp.Conflicts[0].Date)

		// Nothing from the rejected batch may be written.
		s.Equal(1, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})

	s.Run("Error case: a batch colliding with itself writes nothing", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		body := map[string]any{
			"bookings": []map[string]any{
				{"area_id": s.Fixture.AreaID.String(), "desk_id": s.Fixture.DeskIDs[0].String(), "dates": []string{date}},
				{"area_id": s.Fixture.AreaID.String(), "desk_id": s.Fixture.DeskIDs[0].String(), "dates": []string{date}},
			},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, token)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already booked")

		// Full-area desk and an ordinary desk of the same area, same day.
		body = map[string]any{
			"bookings": []map[string]any{
				{"area_id": s.Fixture.AreaID.String(), "desk_id": s.Fixture.FullAreaDeskID.String(), "dates": []string{date}},
				{"area_id": s.Fixture.AreaID.String(), "desk_id": s.Fixture.DeskIDs[0].String(), "dates": []string{date}},
			},
		}
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, token)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already booked")

		s.Equal(0, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})

	s.Run("Concurrency: two users race for the same desk and date", func() {
		t := s.T()
		date := upcomingWorkday(1)
		body := visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[1], date)

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for range 2 {
			token := s.jwt.GenerateToken(t, uuid.New(), nil)
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, token)
				codes <- rec.Code
			}()
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, got)
		s.Equal(1, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(1)), "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: personal desk rejects everyone but its owner", func() {
		t := s.T()
		stranger := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.PersonalDeskID, upcomingWorkday(1)), stranger)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "not permitted")

		owner := s.jwt.GenerateToken(t, s.Fixture.PersonalOwner, nil)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.PersonalDeskID, upcomingWorkday(1)), owner)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	s.Run("Role gating: the restriction activates once someone holds the role", func() {
		t := s.T()
		date := upcomingWorkday(1)

		// Nobody holds the role yet, so the restriction is dormant.
		outsider := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.RestrictedDeskID, date), outsider)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		holderID := uuid.New()
		dbtest.AssignRole(t, s.DB, holderID, s.Fixture.RestrictedRole)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.RestrictedDeskID, upcomingWorkday(2)), outsider)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "not permitted")

		holder := s.jwt.GenerateToken(t, holderID, []string{s.Fixture.RestrictedRole})
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.RestrictedDeskID, upcomingWorkday(2)), holder)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	s.Run("Full area: claiming the whole area blocks its desks and vice versa", func() {
		t := s.T()
		date := upcomingWorkday(1)

		claimer := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.FullAreaDeskID, date), claimer)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		other := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], date), other)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already booked")

		// The next day the area is free again.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(2)), other)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})
}

func (s *BookingSuite) TestUpdateVisitStatus() {
	url := fmt.Sprintf(visitsURL, s.Fixture.OfficeID)

	createVisit := func(t *testing.T, token string) uuid.UUID {
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(1)), token)
		var created response.CreateVisitsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		s.Require().Len(created.VisitIDs, 1)
		return created.VisitIDs[0]
	}

	s.Run("Normal case: owner cancels a confirmed visit", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, nil)
		visitID := createVisit(t, token)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "cancelled"}, token)
		s.Equal(http.StatusNoContent, rec.Code)

		// A cancelled visit no longer occupies the desk.
		s.Equal(0, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})

	s.Run("Error case: a stranger may not touch the visit", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		visitID := createVisit(t, token)

		stranger := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "cancelled"}, stranger)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("Error case: non-admins may only cancel", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		visitID := createVisit(t, token)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "pending"}, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "transition")
	})

	s.Run("Normal case: admins may move any status", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		visitID := createVisit(t, token)

		admin := s.jwt.GenerateAdminToken(t, uuid.New())
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "pending"}, admin)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("Error case: reinstating a cancelled visit re-checks the desk", func() {
		t := s.T()
		owner := s.jwt.GenerateToken(t, uuid.New(), nil)
		visitID := createVisit(t, owner)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "cancelled"}, owner)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		// Someone else takes the freed desk for the same day.
		other := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], upcomingWorkday(1)), other)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		admin := s.jwt.GenerateAdminToken(t, uuid.New())
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "confirmed"}, admin)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already booked")
		s.Equal(1, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})

	s.Run("Normal case: reinstating succeeds while the desk is still free", func() {
		t := s.T()
		owner := s.jwt.GenerateToken(t, uuid.New(), nil)
		visitID := createVisit(t, owner)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "cancelled"}, owner)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		admin := s.jwt.GenerateAdminToken(t, uuid.New())
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(visitStatusURL, visitID), map[string]any{"status": "confirmed"}, admin)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(1, dbtest.CountVisits(t, s.DB, s.Fixture.OfficeID))
	})
}

// =============================================================================
// Room reservations
// =============================================================================

func (s *BookingSuite) TestCreateRoomReservation() {
	url := fmt.Sprintf(roomReservationsURL, s.Fixture.OfficeID)

	s.Run("Normal case: auto-confirming room commits confirmed", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "14:00 - 15:00"), token)

		var created response.CreateRoomReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		s.Equal("confirmed", created.Status)
		s.Equal(time.Hour, created.EndDate.Sub(created.StartDate))
		s.Equal(1, dbtest.CountRoomReservations(t, s.DB, s.Fixture.RoomID))

		listURL := fmt.Sprintf(roomListURL, s.Fixture.OfficeID, s.Fixture.RoomID, date)
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, token)
		var reservations []response.RoomReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &reservations)
		s.Len(reservations, 1)
		s.Equal(created.ReservationID, reservations[0].ID)
	})

	s.Run("Normal case: manually confirmed room starts pending", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.ManualRoomID, upcomingWorkday(1), "14:00 - 15:00"), token)

		var created response.CreateRoomReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		s.Equal("pending", created.Status)
	})

	s.Run("Error case: overlapping slot loses to the committed reservation", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "14:00 - 15:00"), token)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "14:30 - 15:30"), token)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already reserved")

		// Slots that merely touch do not overlap.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "15:00 - 15:30"), token)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	s.Run("Concurrency: two users race for the same slot", func() {
		t := s.T()
		body := reservationBody(s.Fixture.RoomID, upcomingWorkday(1), "10:00 - 10:30")

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for range 2 {
			token := s.jwt.GenerateToken(t, uuid.New(), nil)
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, token)
				codes <- rec.Code
			}()
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, got)
		s.Equal(1, dbtest.CountRoomReservations(t, s.DB, s.Fixture.RoomID))
	})

	s.Run("Error case: reinstating a cancelled reservation re-checks the slot", func() {
		t := s.T()
		owner := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "14:00 - 15:00"), owner)
		var created response.CreateRoomReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(reservationStatusURL, created.ReservationID), map[string]any{"status": "cancelled"}, owner)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		// The freed slot gets taken by an overlapping reservation.
		other := s.jwt.GenerateToken(t, uuid.New(), nil)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, date, "14:30 - 15:30"), other)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		admin := s.jwt.GenerateAdminToken(t, uuid.New())
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(reservationStatusURL, created.ReservationID), map[string]any{"status": "confirmed"}, admin)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already reserved")
	})

	s.Run("Error case: slot outside the room's hours is rejected", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reservationBody(s.Fixture.RoomID, upcomingWorkday(1), "8:00 - 8:30"), token)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "working hours")
	})
}

func (s *BookingSuite) TestRoomTimeSlots() {
	s.Run("Normal case: reserved ranges drop out of the slot listing", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		createURL := fmt.Sprintf(roomReservationsURL, s.Fixture.OfficeID)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL,
			reservationBody(s.Fixture.RoomID, date, "9:00 - 10:00"), token)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		slotsURL := fmt.Sprintf(roomTimeSlotsURL, s.Fixture.OfficeID, s.Fixture.RoomID, date)
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL, nil, token)

		var slots response.TimeSlotsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &slots)

		// The full 9:00-18:00 half-hour grid minus the reserved hour.
		var expected []string
		for h := 10; h < 18; h++ {
			expected = append(expected,
				fmt.Sprintf("%d:00 - %d:30", h, h),
				fmt.Sprintf("%d:30 - %d:00", h, h+1))
		}
		if diff := cmp.Diff(expected, slots.Slots); diff != "" {
			t.Errorf("slot listing mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: cancelling frees the slot again", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), nil)
		date := upcomingWorkday(1)

		createURL := fmt.Sprintf(roomReservationsURL, s.Fixture.OfficeID)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL,
			reservationBody(s.Fixture.RoomID, date, "9:00 - 9:30"), token)
		var created response.CreateRoomReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(reservationStatusURL, created.ReservationID), map[string]any{"status": "cancelled"}, token)
		s.Equal(http.StatusNoContent, rec.Code)

		slotsURL := fmt.Sprintf(roomTimeSlotsURL, s.Fixture.OfficeID, s.Fixture.RoomID, date)
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL, nil, token)
		var slots response.TimeSlotsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &slots)
		s.Contains(slots.Slots, "9:00 - 9:30")
	})
}

// =============================================================================
// Free desks
// =============================================================================

func (s *BookingSuite) TestFreeDesks() {
	s.Run("Normal case: booked desks drop out only for their dates", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, nil)
		date1 := upcomingWorkday(1)
		date2 := upcomingWorkday(2)

		createURL := fmt.Sprintf(visitsURL, s.Fixture.OfficeID)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL,
			visitBody(s.Fixture.AreaID, s.Fixture.DeskIDs[0], date1), token)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		assertFreeDesks := func(query string, wantDeskFree bool) {
			rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
				fmt.Sprintf(freeDesksURL, s.Fixture.OfficeID, query), nil, token)
			var free response.FreeDesksResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &free)

			found := false
			for _, desk := range free.Desks {
				if desk.DeskID == s.Fixture.DeskIDs[0] {
					found = true
				}
			}
			s.Equal(wantDeskFree, found, "desk availability for %s", query)
		}

		assertFreeDesks(date1, false)
		assertFreeDesks(date2, true)
		// A desk must be free on every requested date to appear.
		assertFreeDesks(date1+"&dates="+date2, false)
	})

	s.Run("Normal case: personal desks appear only for their owner", func() {
		t := s.T()
		date := upcomingWorkday(1)

		check := func(token string, want bool) {
			rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
				fmt.Sprintf(freeDesksURL, s.Fixture.OfficeID, date), nil, token)
			var free response.FreeDesksResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &free)

			found := false
			for _, desk := range free.Desks {
				if desk.DeskID == s.Fixture.PersonalDeskID {
					found = true
				}
			}
			s.Equal(want, found)
		}

		check(s.jwt.GenerateToken(t, uuid.New(), nil), false)
		check(s.jwt.GenerateToken(t, s.Fixture.PersonalOwner, nil), true)
	})
}
