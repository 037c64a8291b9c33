package users

import (
	"net/http"

	"competition-portal/database"
	"competition-portal/internal/api/registrations"
	"competition-portal/internal/app/http/middleware"
	"competition-portal/internal/domain/access"
	"competition-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type UserDTO struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

type MeResponse struct {
	User            UserDTO                        `json:"user"`
	HasRegistration bool                           `json:"has_registration"`
	Access          registrations.AccessDTO        `json:"access"`
	StatusRules     map[string][]string            `json:"status_rules"`
	Registration    *registrations.RegistrationDTO `json:"registration,omitempty"`
}

// statusRules exposes the action table so UIs render from the same
// source the guards enforce instead of hardcoding status sets.
func statusRules() map[string][]string {
	actions := []access.Action{
		access.ActionEditRegistration,
		access.ActionViewPreliminary,
		access.ActionUploadPreliminary,
		access.ActionViewFinal,
		access.ActionUploadFinal,
	}
	rules := make(map[string][]string, len(actions))
	for _, a := range actions {
		statuses := access.AllowedStatuses(a)
		out := make([]string, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, string(s))
		}
		rules[string(a)] = out
	}
	return rules
}

// GetCurrentUser returns the profile plus the access snapshot the
// dashboard layout consumes.
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reg, err := middleware.CurrentRegistration(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registration"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		HasRegistration: reg != nil,
		Access:          registrations.BuildAccessDTO(reg),
		StatusRules:     statusRules(),
	}
	if reg != nil {
		dto := registrations.BuildRegistrationDTO(*reg)
		resp.Registration = &dto
	}

	c.JSON(http.StatusOK, resp)
}

// GuardDecision exposes the route-guard table to the frontend layout:
// GET /guard/decision?path=/dashboard/upload-final
func GuardDecision(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path"})
		return
	}

	sess := middleware.SessionFromContext(c)

	var dec access.Decision
	if sess != nil && !sess.IsAdmin() {
		reg, err := middleware.CurrentRegistration(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registration"})
			return
		}
		dec = access.Decide(sess, reg, path)
	} else {
		dec = access.Decide(sess, nil, path)
	}

	c.JSON(http.StatusOK, dec)
}
