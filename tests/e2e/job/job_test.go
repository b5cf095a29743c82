//go:build e2e

package job_test

import (
	"net/http"
	"testing"
	"time"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/usecase/queries"
	"glass-dispatch/tests/common/builder"
	"glass-dispatch/tests/common/dbtest"
	"glass-dispatch/tests/common/httptest"
	"glass-dispatch/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	jobsURL           = "/api/jobs"
	firstStopCountURL = "/api/jobs/first-stop-count"
	partsReportURL    = "/api/reports/parts"
)

type JobSuite struct {
	e2e.SharedSuite
}

func (s *JobSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestJobSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JobSuite))
}

func (s *JobSuite) authedUser(email, role string) string {
	t := s.T()
	userID := dbtest.CreateTestUser(t, s.DB, email, role)
	token := "e2e-token-" + email
	dbtest.CreateTestSession(t, s.DB, userID, token)
	return token
}

// =============================================================================
// TestFirstStopCapacity - fleet-wide daily first-stop limit
// =============================================================================

func (s *JobSuite) TestFirstStopCapacity() {
	s.Run("Normal case: fourth first stop of the day is rejected", func() {
		t := s.T()

		token := s.authedUser("dispatcher@example.com", string(user.RoleAdmin))
		appointment := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			reqBody := builder.NewJobBuilder().AsFirstStop(appointment.Add(time.Duration(i) * time.Hour)).BuildDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, "first stop %d should be accepted", i+1)
		}

		reqBody := builder.NewJobBuilder().AsFirstStop(appointment).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, "fourth first stop should hit the daily limit")

		// the day is now fully booked
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, firstStopCountURL+"?date=2025-06-03", nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		var count queries.FirstStopCountView
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &count))
		require.Equal(t, int64(3), count.Count)
		require.Equal(t, int64(0), count.Remaining)
	})

	s.Run("Normal case: another day is unaffected", func() {
		t := s.T()

		token := s.authedUser("dispatcher@example.com", string(user.RoleAdmin))
		appointment := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			reqBody := builder.NewJobBuilder().AsFirstStop(appointment.Add(time.Duration(i) * time.Hour)).BuildDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		nextDay := builder.NewJobBuilder().AsFirstStop(appointment.Add(24 * time.Hour)).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, nextDay, token)
		require.Equal(t, http.StatusCreated, w.Code, "next day's first stop should be accepted")
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		reqBody := builder.NewJobBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPartsReport - parts grouped by distributor for a date
// =============================================================================

func (s *JobSuite) TestPartsReport() {
	s.Run("Normal case: parts grouped by distributor with unassigned last", func() {
		t := s.T()

		token := s.authedUser("dispatcher@example.com", string(user.RoleAdmin))
		appointment := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		distributorID := dbtest.CreateTestDistributor(t, s.DB, "Pilkington")

		assigned := builder.NewJobBuilder().
			WithPartNumber("WS-100").
			WithDistributor(distributorID).
			BuildDTO()
		assigned.AppointmentTime = &appointment
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, assigned, token)
		require.Equal(t, http.StatusCreated, w.Code)

		unassigned := builder.NewJobBuilder().
			WithCustomerName("Walk In").
			WithPartNumber("WS-300").
			BuildDTO()
		unassigned.AppointmentTime = &appointment
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, unassigned, token)
		require.Equal(t, http.StatusCreated, w.Code)

		// no part number, should not appear in the report
		noPart := builder.NewJobBuilder().WithCustomerName("No Part").BuildDTO()
		noPart.AppointmentTime = &appointment
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, noPart, token)
		require.Equal(t, http.StatusCreated, w.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, partsReportURL+"?date=2025-06-03", nil, token)
		require.Equal(t, http.StatusOK, rw.Code)

		var report queries.PartsReport
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &report))
		require.Equal(t, int64(3), report.TotalJobs)
		require.Equal(t, 2, report.TotalParts)
		require.Len(t, report.Groups, 2)
		require.Equal(t, "Pilkington", report.Groups[0].DistributorName)
		require.Equal(t, queries.UnassignedBucket, report.Groups[1].DistributorName)
	})

	s.Run("Error case: missing date parameter", func() {
		t := s.T()

		token := s.authedUser("dispatcher@example.com", string(user.RoleAdmin))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, partsReportURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
