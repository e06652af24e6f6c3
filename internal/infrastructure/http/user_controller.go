package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"

	"github.com/go-chi/chi/v5"
)

// UserController handles HTTP requests for user account operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe handles GET /users/me
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	user, err := c.userService.GetUser(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, user)
}

// GetUser handles GET /users/{id}
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		response.SendBadRequest(w, r, "User ID is required")
		return
	}

	user, err := c.userService.GetUser(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, user)
}

// ListUsers handles GET /admin/users
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := c.userService.ListUsers(r.Context(), role, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"users":  users,
		"offset": offset,
		"count":  len(users),
	})
}

// UpdateProfile handles PUT /users/me
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	var cmd command.UpdateUserProfile
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.UserID = userID

	if err := c.userService.UpdateProfile(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// ChangePassword handles PUT /users/me/password
func (c *UserController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	var cmd command.ChangeUserPassword
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.UserID = userID

	if err := c.userService.ChangePassword(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// DeactivateUser handles DELETE /admin/users/{id}
func (c *UserController) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		response.SendBadRequest(w, r, "User ID is required")
		return
	}

	// Admins cannot deactivate themselves
	if userID == middleware.GetUserID(r.Context()) {
		response.SendBadRequest(w, r, "Cannot deactivate your own account")
		return
	}

	cmd := &command.DeactivateUser{UserID: userID}
	if err := c.userService.DeactivateUser(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}
