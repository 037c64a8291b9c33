package teams

import (
	"net/http"

	"competition-portal/database"
	"competition-portal/internal/domain/registration"

	"github.com/gin-gonic/gin"
)

// POST /team
func CreateTeam(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	var count int64
	database.DB.Model(&registration.Team{}).Where("owner_id = ?", userID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a team"})
		return
	}

	team := registration.Team{
		Name:    input.Name,
		OwnerID: userID,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// PUT /team/update
func UpdateTeam(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	var team registration.Team
	if err := database.DB.Where("owner_id = ?", userID).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	team.Name = input.Name
	if err := database.DB.Save(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}

	c.JSON(http.StatusOK, team)
}
