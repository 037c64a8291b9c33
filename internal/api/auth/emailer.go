package auth

import (
	"fmt"

	"competition-portal/config"
)

// SendVerificationEmail prints the verification link for now. Swap in a
// real mail provider behind this function when SMTP credentials exist.
func SendVerificationEmail(email string, userID uint, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s&userId=%d", config.CORS_ORIGIN, token, userID)
	fmt.Printf("📬 Verification link for %s: %s\n", email, link)
	return nil
}
