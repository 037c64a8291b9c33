package competition

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Competition struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	RegistrationOpen  *time.Time `json:"registration_open,omitempty"`
	RegistrationClose *time.Time `json:"registration_close,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Competition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
