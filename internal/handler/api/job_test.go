//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"glass-dispatch/internal/domain/job"
	"glass-dispatch/internal/handler/api"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"
	"glass-dispatch/tests/common/builder"
	"glass-dispatch/tests/common/httptest"
	commandsmock "glass-dispatch/tests/mock/commands"
	queriesmock "glass-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockJobCommands
	mockQueries  *queriesmock.MockJobQueries
	handler      *api.JobHandler
	actorID      uuid.UUID
}

func (s *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockJobCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockJobQueries(s.mockCtrl)
	s.handler = api.NewJobHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock middleware behavior: authenticated requests carry a user id
	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.actorID)
			}
			h(c)
		}
	}

	s.router.POST("/jobs", withUser(s.handler.Create))
	s.router.GET("/jobs", s.handler.List)
	s.router.GET("/jobs/first-stop-count", s.handler.FirstStopCount)
	s.router.GET("/jobs/:id", s.handler.Get)
	s.router.PATCH("/jobs/:id", s.handler.Update)
	s.router.POST("/jobs/:id/comments", withUser(s.handler.AddComment))
}

func (s *JobHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func (s *JobHandlerTestSuite) TestCreate() {
	reqBody := builder.NewJobBuilder().BuildDTO()
	returnView := builder.NewJobBuilder().BuildReadModel()

	s.Run("creates job", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.actorID).
			Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs", reqBody, "token")

		var got queries.JobView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(returnView.ID, got.ID)
	})

	s.Run("first stop capacity exceeded", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, job.ErrFirstStopCapacityExceeded)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs", reqBody, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "First stop capacity exceeded")
	})

	s.Run("missing required fields", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs", map[string]any{"phone": "555-0100"}, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs", reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *JobHandlerTestSuite) TestGet() {
	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, commands.ErrJobNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})

	s.Run("invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/not-a-uuid", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *JobHandlerTestSuite) TestFirstStopCount() {
	s.Run("returns count and remaining", func() {
		s.mockQueries.EXPECT().
			FirstStopCount(gomock.Any(), "2025-06-03").
			Return(&queries.FirstStopCountView{Date: "2025-06-03", Count: 2, Remaining: 1}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/first-stop-count?date=2025-06-03", nil, "token")

		var got queries.FirstStopCountView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(int64(2), got.Count)
		s.Equal(int64(1), got.Remaining)
	})

	s.Run("missing date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/first-stop-count", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date query parameter required")
	})

	s.Run("invalid date", func() {
		s.mockQueries.EXPECT().
			FirstStopCount(gomock.Any(), "bad").
			Return(nil, queries.ErrInvalidDate)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/first-stop-count?date=bad", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date")
	})
}

func (s *JobHandlerTestSuite) TestUpdate() {
	s.Run("capacity conflict on first stop flip", func() {
		id := uuid.New()
		isFirstStop := true
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(nil, job.ErrFirstStopCapacityExceeded)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+id.String(),
			map[string]any{"is_first_stop": isFirstStop}, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "First stop capacity exceeded")
	})
}

func (s *JobHandlerTestSuite) TestAddComment() {
	s.Run("creates comment", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			AddComment(gomock.Any(), id, s.actorID, "on my way").
			Return(&queries.CommentView{ID: uuid.New(), JobID: id, Body: "on my way"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs/"+id.String()+"/comments",
			map[string]any{"body": "on my way"}, "token")

		var got queries.CommentView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("on my way", got.Body)
	})

	s.Run("empty body rejected", func() {
		id := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs/"+id.String()+"/comments",
			map[string]any{"body": ""}, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}
