package access

import "time"

// Session is the decoded token passed explicitly into guard decisions.
// No package-level session state exists; callers construct one from
// their token source (middleware context, cookie, test fixture).
type Session struct {
	UserID   uint
	Username string
	Role     string
	IssuedAt time.Time
	Expiry   time.Time
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

func (s *Session) Expired(now time.Time) bool {
	return s == nil || !s.Expiry.IsZero() && now.After(s.Expiry)
}
