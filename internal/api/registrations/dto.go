package registrations

import (
	"competition-portal/internal/domain/access"
	"competition-portal/internal/domain/registration"
)

// AccessDTO is the predicate snapshot the dashboard reads instead of
// re-deriving status sets client-side.
type AccessDTO struct {
	CanEditRegistration      bool `json:"can_edit_registration"`
	CanAccessUploadPrelim    bool `json:"can_access_upload_penyisihan"`
	CanUploadPrelim          bool `json:"can_upload_penyisihan"`
	CanAccessUploadFinal     bool `json:"can_access_upload_final"`
	CanUploadFinal           bool `json:"can_upload_final"`
	MissingRequiredDocuments bool `json:"missing_required_documents"`
}

func BuildAccessDTO(reg *registration.Registration) AccessDTO {
	return AccessDTO{
		CanEditRegistration:      access.CanEditRegistration(reg),
		CanAccessUploadPrelim:    access.CanAccessUploadPenyisihan(reg),
		CanUploadPrelim:          access.CanUploadPenyisihan(reg),
		CanAccessUploadFinal:     access.CanAccessUploadFinal(reg),
		CanUploadFinal:           access.CanUploadFinal(reg),
		MissingRequiredDocuments: reg != nil && !reg.ReadyForReview(),
	}
}

type RegistrationDTO struct {
	registration.Registration
	Category string    `json:"category"`
	Access   AccessDTO `json:"access"`
}

func BuildRegistrationDTO(reg registration.Registration) RegistrationDTO {
	category, _ := reg.Category()
	return RegistrationDTO{
		Registration: reg,
		Category:     string(category),
		Access:       BuildAccessDTO(&reg),
	}
}
