package users

import "time"

// TokenType distinguishes the two one-time tokens the portal issues.
type TokenType string

const (
	TokenEmailVerification TokenType = "email_verification"
	TokenPasswordReset     TokenType = "password_reset"
)

type VerificationToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_verif_user_type"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	Token     string    `gorm:"uniqueIndex"`
	Type      TokenType `gorm:"type:varchar(30);uniqueIndex:idx_verif_user_type"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
