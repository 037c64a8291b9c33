package competitions

import (
	"net/http"

	"competition-portal/config"
	"competition-portal/database"
	"competition-portal/internal/domain/competition"

	"github.com/gin-gonic/gin"
)

type CompetitionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// fallbackCategory reads the configured default for names that match no
// known key. A bad config value falls back to UI_UX.
func fallbackCategory() competition.Category {
	if cat, ok := competition.ParseCategory(config.CATEGORY_FALLBACK); ok {
		return cat
	}
	return competition.CategoryUIUX
}

func toDTO(comp competition.Competition) CompetitionDTO {
	return CompetitionDTO{
		ID:          comp.ID,
		Name:        comp.Name,
		Description: comp.Description,
		Category:    string(competition.CategoryOrDefault(comp.Name, fallbackCategory())),
	}
}

func ListCompetitions(c *gin.Context) {
	var comps []competition.Competition
	if err := database.DB.Order("created_at ASC").Find(&comps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load competitions"})
		return
	}

	out := make([]CompetitionDTO, 0, len(comps))
	for _, comp := range comps {
		out = append(out, toDTO(comp))
	}
	c.JSON(http.StatusOK, out)
}

func GetCompetition(c *gin.Context) {
	var comp competition.Competition
	if err := database.DB.First(&comp, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}
	c.JSON(http.StatusOK, toDTO(comp))
}

// CreateCompetition is admin-only.
func CreateCompetition(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comp := competition.Competition{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.DB.Create(&comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create competition"})
		return
	}

	c.JSON(http.StatusCreated, toDTO(comp))
}
