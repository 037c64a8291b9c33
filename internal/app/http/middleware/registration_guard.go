package middleware

import (
	"errors"
	"net/http"

	"competition-portal/database"
	"competition-portal/internal/domain/access"
	"competition-portal/internal/domain/registration"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentRegistration loads the caller's newest registration with its
// competition, members and documents. Returns nil when none exists.
func CurrentRegistration(c *gin.Context) (*registration.Registration, error) {
	userID := c.GetUint("user_id")

	var reg registration.Registration
	err := database.DB.
		Preload("Competition").
		Preload("Team").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Documents").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RegistrationGuard is the inner enforcement layer: it re-checks a
// status-gated action against freshly loaded registration data. The
// edge middleware cannot do this (the token carries no status), so this
// layer is authoritative for the data-dependent rules.
func RegistrationGuard(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, err := CurrentRegistration(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registration"})
			return
		}

		if reg == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "No registration found",
				"redirect": access.PathCompetitionSelect,
			})
			return
		}

		if !access.Allows(action, reg) {
			dec := access.DenialFor(action)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    dec.Reason,
				"redirect": dec.Target,
			})
			return
		}

		c.Set("registration", reg)
		c.Next()
	}
}

// GuardedRegistration returns the registration stored by RegistrationGuard.
func GuardedRegistration(c *gin.Context) *registration.Registration {
	v, ok := c.Get("registration")
	if !ok {
		return nil
	}
	reg, _ := v.(*registration.Registration)
	return reg
}
