package handlers

import (
	"net/http"

	"memory-gateway/pkg/auth"
	"memory-gateway/pkg/common"

	"go.uber.org/zap"
)

// UserHandler exposes identity introspection for the signed-in caller
type UserHandler struct {
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(logger *zap.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// UserInfoResponse mirrors what the browser client expects after sign-in
type UserInfoResponse struct {
	UserID          string `json:"userId"`
	SessionID       string `json:"sessionId"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// GetUser handles GET /user. The auth middleware guarantees a resolved
// identity is present; a missing one is a programming error, not a client
// fault, but still surfaces as 401.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.logger.Error("authenticated route without user context", zap.Error(err))
		common.RespondJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "Unauthorized",
			"message": "No authenticated user",
		})
		return
	}

	_ = common.RespondJSON(w, http.StatusOK, UserInfoResponse{
		UserID:          userCtx.UserID,
		SessionID:       userCtx.SessionID,
		IsAuthenticated: true,
	})
}
