package access

import "competition-portal/internal/domain/registration"

// Named predicates for each gated page/action. All are pure and return
// false on a nil registration.

// CanEditRegistration: biodata stays editable only before review starts,
// or again after a rejection.
func CanEditRegistration(reg *registration.Registration) bool {
	return Allows(ActionEditRegistration, reg)
}

// CanAccessUploadPenyisihan gates the preliminary-round upload page
// (view access, deliberately broader than upload access).
func CanAccessUploadPenyisihan(reg *registration.Registration) bool {
	return Allows(ActionViewPreliminary, reg)
}

// CanUploadPenyisihan gates the actual preliminary submission.
func CanUploadPenyisihan(reg *registration.Registration) bool {
	return Allows(ActionUploadPreliminary, reg)
}

func CanAccessUploadFinal(reg *registration.Registration) bool {
	return Allows(ActionViewFinal, reg)
}

func CanUploadFinal(reg *registration.Registration) bool {
	return Allows(ActionUploadFinal, reg)
}
