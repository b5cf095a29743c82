package request

type CreateTechnicianRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PushTokenRequest registers the caller's device token; a null token clears
// the registration.
type PushTokenRequest struct {
	Token *string `json:"token"`
}
