//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"glass-dispatch/internal/handler/api"
	resdto "glass-dispatch/internal/handler/dto/response"
	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/pkg/cookie"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/tests/common/builder"
	"glass-dispatch/tests/common/httptest"
	commandsmock "glass-dispatch/tests/mock/commands"
	queriesmock "glass-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/session", s.handler.ExchangeSession)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestExchangeSession() {
	url := "/auth/session"

	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "opaque-session-token"
	expiresAt := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns token, user and session cookie", func() {
		s.mockCommands.EXPECT().ExchangeSession(gomock.Any(), "valid-session-id").
			Return(&commands.ExchangeSessionResult{
				User:      returnUser,
				Token:     expectedToken,
				ExpiresAt: expiresAt,
			}, nil).Times(1)

		rec := httptest.PerformSessionExchange(s.T(), s.router, url, "valid-session-id")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.SessionToken)
		s.Equal(expiresAt.Unix(), response.ExpiresAt)
		s.Equal(returnUser.Email, response.User.Email)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionTokenCookieName)
		s.Require().NotNil(sessionCookie, "session cookie should be set")
		s.Equal(expectedToken, sessionCookie.Value)
	})

	s.Run("error: 400 Bad Request when the header is missing", func() {
		rec := httptest.PerformSessionExchange(s.T(), s.router, url, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Session-ID header required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "exchange rejected by the provider",
				commandsError:  commands.ErrSessionExchangeFailed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Session exchange failed",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExchangeSession(gomock.Any(), "valid-session-id").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformSessionExchange(s.T(), s.router, url, "valid-session-id")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("error: 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when the user row is gone", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: deletes the session and returns 204", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "bearer-token").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: no token still clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
