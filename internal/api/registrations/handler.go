package registrations

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"competition-portal/config"
	"competition-portal/database"
	"competition-portal/internal/app/http/middleware"
	"competition-portal/internal/domain/access"
	"competition-portal/internal/domain/competition"
	"competition-portal/internal/domain/registration"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadBytes = 10 << 20 // 10MB, PDF only

func preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Competition").
		Preload("Team").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Documents")
}

// GET /registration — the caller's registrations, newest first. An
// empty list is a normal 200; clients treat index 0 as current.
func ListMyRegistrations(c *gin.Context) {
	userID := c.GetUint("user_id")

	var regs []registration.Registration
	err := preloadAll(database.DB).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}

	out := make([]RegistrationDTO, 0, len(regs))
	for _, reg := range regs {
		out = append(out, BuildRegistrationDTO(reg))
	}
	c.JSON(http.StatusOK, out)
}

// GET /registration/:id — owner or admin.
func GetRegistration(c *gin.Context) {
	var reg registration.Registration
	err := preloadAll(database.DB).First(&reg, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if reg.UserID != c.GetUint("user_id") && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, BuildRegistrationDTO(reg))
}

type memberInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	StudentID string `json:"student_id"`
	Phone     string `json:"phone"`
	Discord   string `json:"discord"`
}

// POST /registration
func CreateRegistration(c *gin.Context) {
	var input struct {
		CompetitionID   string        `json:"competitionId" binding:"required"`
		InstitutionName string        `json:"institutionName" binding:"required"`
		Members         []memberInput `json:"members" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	var comp competition.Competition
	if err := database.DB.First(&comp, "id = ?", input.CompetitionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	var team registration.Team
	if err := database.DB.Where("owner_id = ?", userID).First(&team).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Create your team before registering"})
		return
	}

	var count int64
	database.DB.Model(&registration.Registration{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a registration"})
		return
	}

	reg := registration.Registration{
		UserID:          userID,
		Status:          registration.StatusPending,
		TeamID:          team.ID,
		CompetitionID:   comp.ID,
		InstitutionName: input.InstitutionName,
	}
	for i, m := range input.Members {
		reg.Members = append(reg.Members, registration.Member{
			Position:  i,
			Name:      m.Name,
			Email:     m.Email,
			StudentID: m.StudentID,
			Phone:     m.Phone,
			Discord:   m.Discord,
		})
	}

	if err := database.DB.Create(&reg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create registration"})
		return
	}

	reg.Competition = comp
	reg.Team = team
	c.JSON(http.StatusCreated, BuildRegistrationDTO(reg))
}

// PUT /registration — biodata update. The form submits member fields as
// parallel arrays; index i across all arrays describes one member.
// Route carries RegistrationGuard(ActionEditRegistration).
func UpdateBiodata(c *gin.Context) {
	var input struct {
		InstitutionName  string   `json:"institutionName" binding:"required"`
		MemberNames      []string `json:"memberNames" binding:"required,min=1"`
		MemberEmails     []string `json:"memberEmails" binding:"required"`
		MemberStudentIDs []string `json:"memberStudentIds"`
		MemberPhones     []string `json:"memberPhones"`
		MemberDiscords   []string `json:"memberDiscords"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := len(input.MemberNames)
	if len(input.MemberEmails) != n ||
		lenMismatch(input.MemberStudentIDs, n) ||
		lenMismatch(input.MemberPhones, n) ||
		lenMismatch(input.MemberDiscords, n) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member field arrays must have equal length"})
		return
	}

	reg := middleware.GuardedRegistration(c)
	if reg == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No registration found"})
		return
	}

	members := make([]registration.Member, 0, n)
	for i := 0; i < n; i++ {
		members = append(members, registration.Member{
			RegistrationID: reg.ID,
			Position:       i,
			Name:           input.MemberNames[i],
			Email:          input.MemberEmails[i],
			StudentID:      at(input.MemberStudentIDs, i),
			Phone:          at(input.MemberPhones, i),
			Discord:        at(input.MemberDiscords, i),
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(reg).Update("institution_name", input.InstitutionName).Error; err != nil {
			return err
		}
		if err := tx.Where("registration_id = ?", reg.ID).Delete(&registration.Member{}).Error; err != nil {
			return err
		}
		return tx.Create(&members).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update biodata"})
		return
	}

	reg.InstitutionName = input.InstitutionName
	reg.Members = members
	c.JSON(http.StatusOK, BuildRegistrationDTO(*reg))
}

func lenMismatch(arr []string, n int) bool {
	return len(arr) != 0 && len(arr) != n
}

func at(arr []string, i int) string {
	if i < len(arr) {
		return arr[i]
	}
	return ""
}

// POST /registration/status — admin only. The server is the sole
// arbiter of transitions; clients never compute status.
func ChangeStatus(c *gin.Context) {
	var input struct {
		RegistrationID string `json:"registrationId" binding:"required"`
		Status         string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := registration.ParseStatus(input.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + input.Status})
		return
	}

	var reg registration.Registration
	if err := preloadAll(database.DB).First(&reg, "id = ?", input.RegistrationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if err := database.DB.Model(&reg).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	reg.Status = status
	c.JSON(http.StatusOK, BuildRegistrationDTO(reg))
}

// POST /registration/upload — multipart: file (PDF, ≤10MB) + documentType.
// Which types the caller may upload depends on registration status, so
// the check runs here against the same action table as everything else.
func UploadDocument(c *gin.Context) {
	docType, ok := registration.ParseDocumentType(c.PostForm("documentType"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown documentType"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are accepted"})
		return
	}

	reg, err := middleware.CurrentRegistration(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registration"})
		return
	}
	if reg == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No registration found", "redirect": access.PathCompetitionSelect})
		return
	}

	action := uploadAction(docType)
	if !access.Allows(action, reg) {
		dec := access.DenialFor(action)
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason, "redirect": dec.Target})
		return
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	storedName := fmt.Sprintf("%s_%s.pdf", uuid.NewString(), strings.ToLower(string(docType)))
	storedPath := filepath.Join(config.UPLOAD_DIR, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	doc := registration.Document{
		RegistrationID: reg.ID,
		Type:           docType,
		FileName:       file.Filename,
		StoredPath:     storedPath,
		SizeBytes:      file.Size,
		ContentType:    "application/pdf",
	}

	// The replaced file is deleted only after the transaction commits;
	// a rollback must leave the old row's file in place.
	stalePath := ""
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// one document per type: re-upload replaces
		var old registration.Document
		if err := tx.Where("registration_id = ? AND type = ?", reg.ID, docType).First(&old).Error; err == nil {
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
			stalePath = old.StoredPath
		}
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}

		// PENDING moves to REVIEW once both required documents exist
		fresh := *reg
		fresh.Documents = append(filterType(reg.Documents, docType), doc)
		if fresh.Status == registration.StatusPending && fresh.ReadyForReview() {
			if err := tx.Model(&registration.Registration{}).
				Where("id = ?", reg.ID).
				Update("status", registration.StatusReview).Error; err != nil {
				return err
			}
			reg.Status = registration.StatusReview
		}
		reg.Documents = fresh.Documents
		return nil
	})
	if err != nil {
		_ = os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	if stalePath != "" {
		_ = os.Remove(stalePath)
	}

	c.JSON(http.StatusOK, BuildRegistrationDTO(*reg))
}

// uploadAction maps a document type onto the action table. Required
// documents follow the biodata-edit window; round submissions have
// their own gates.
func uploadAction(t registration.DocumentType) access.Action {
	switch t {
	case registration.DocPreliminary:
		return access.ActionUploadPreliminary
	case registration.DocFinal:
		return access.ActionUploadFinal
	default:
		return access.ActionEditRegistration
	}
}

func filterType(docs []registration.Document, t registration.DocumentType) []registration.Document {
	out := docs[:0:0]
	for _, d := range docs {
		if d.Type != t {
			out = append(out, d)
		}
	}
	return out
}
