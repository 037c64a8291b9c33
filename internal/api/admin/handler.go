package admin

import (
	"net/http"
	"strconv"

	"competition-portal/database"
	"competition-portal/internal/api/registrations"
	"competition-portal/internal/domain/registration"
	"competition-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageSize = 20

type AdminStats struct {
	TotalUsers         int            `json:"total_users"`
	TotalRegistrations int            `json:"total_registrations"`
	PerStatus          map[string]int `json:"per_status"`
	PerCompetition     map[string]int `json:"per_competition"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

// ListRegistrations is paginated so the review console (and the client
// fan-out in internal/client/portal) can walk page by page.
// GET /admin/registrations?page=1
func ListRegistrations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	var total int64
	if err := database.DB.Model(&registration.Registration{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count registrations"})
		return
	}
	totalPages := int((total + pageSize - 1) / pageSize)

	var regs []registration.Registration
	err = database.DB.
		Preload("Competition").
		Preload("Team").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Documents").
		Order("created_at ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&regs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}

	out := make([]registrations.RegistrationDTO, 0, len(regs))
	for _, reg := range regs {
		out = append(out, registrations.BuildRegistrationDTO(reg))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        out,
		"page":        page,
		"total_pages": totalPages,
		"total":       total,
	})
}

// GetRegistrationDetail serves the review console's single-registration
// view. GET /admin/registrations/:id
func GetRegistrationDetail(c *gin.Context) {
	var reg registration.Registration
	err := database.DB.
		Preload("Competition").
		Preload("Team").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Documents").
		First(&reg, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	c.JSON(http.StatusOK, registrations.BuildRegistrationDTO(reg))
}

func GetStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalRegs int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&registration.Registration{}).Count(&totalRegs)
	stats.TotalUsers = int(totalUsers)
	stats.TotalRegistrations = int(totalRegs)

	type statusCount struct {
		Status string
		Count  int
	}
	var byStatus []statusCount
	database.DB.
		Model(&registration.Registration{}).
		Select("status, COUNT(id) as count").
		Group("status").
		Scan(&byStatus)

	stats.PerStatus = map[string]int{}
	for _, sc := range byStatus {
		stats.PerStatus[sc.Status] = sc.Count
	}

	type compCount struct {
		Name  string
		Count int
	}
	var byComp []compCount
	database.DB.
		Table("registrations").
		Select("competitions.name, COUNT(registrations.id) as count").
		Joins("LEFT JOIN competitions ON registrations.competition_id = competitions.id").
		Group("competitions.name").
		Scan(&byComp)

	stats.PerCompetition = map[string]int{}
	for _, cc := range byComp {
		stats.PerCompetition[cc.Name] = cc.Count
	}

	c.JSON(http.StatusOK, stats)
}
