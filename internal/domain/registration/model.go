package registration

import (
	"time"

	"competition-portal/internal/domain/competition"
	"competition-portal/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	OwnerID   uint       `gorm:"not null;index" json:"owner_id"`
	Owner     users.User `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type Registration struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Status Status `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	TeamID string `gorm:"type:uuid;not null" json:"team_id"`
	Team   Team   `gorm:"foreignKey:TeamID" json:"team"`

	CompetitionID string                  `gorm:"type:uuid;not null" json:"competition_id"`
	Competition   competition.Competition `gorm:"foreignKey:CompetitionID" json:"competition"`

	InstitutionName string     `gorm:"size:150" json:"institution_name"`
	Members         []Member   `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"members"`
	Documents       []Document `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"documents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Category resolves the registration's competition category from the
// competition name. Requires Competition to be preloaded.
func (r *Registration) Category() (competition.Category, bool) {
	return competition.ResolveCategory(r.Competition.Name)
}

// HasDocument reports whether a file of the given type has been uploaded.
// The backend keeps at most one document per type per registration.
func (r *Registration) HasDocument(t DocumentType) bool {
	for _, d := range r.Documents {
		if d.Type == t {
			return true
		}
	}
	return false
}

// ReadyForReview is true when every required document is present.
func (r *Registration) ReadyForReview() bool {
	for _, t := range RequiredDocumentTypes {
		if !r.HasDocument(t) {
			return false
		}
	}
	return true
}

// Members are kept in form order via Position.
type Member struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	RegistrationID string `gorm:"type:uuid;not null;index" json:"-"`
	Position       int    `gorm:"not null" json:"position"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Email          string `gorm:"size:100;not null" json:"email"`
	StudentID      string `gorm:"size:50" json:"student_id"`
	Phone          string `gorm:"size:30" json:"phone"`
	Discord        string `gorm:"size:50" json:"discord"`
}

type Document struct {
	ID             string       `gorm:"type:uuid;primaryKey" json:"id"`
	RegistrationID string       `gorm:"type:uuid;not null;uniqueIndex:idx_doc_reg_type" json:"-"`
	Type           DocumentType `gorm:"type:varchar(20);not null;uniqueIndex:idx_doc_reg_type" json:"type"`
	FileName       string       `gorm:"size:255;not null" json:"file_name"`
	StoredPath     string       `gorm:"size:255;not null" json:"-"`
	SizeBytes      int64        `json:"size_bytes"`
	ContentType    string       `gorm:"size:100" json:"content_type"`
	UploadedAt     time.Time    `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
