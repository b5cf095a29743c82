package response

import "glass-dispatch/internal/usecase/queries"

type SessionResponse struct {
	SessionToken string                      `json:"session_token"`
	ExpiresAt    int64                       `json:"expires_at"`
	User         *queries.AuthorizedUserView `json:"user"`
}
