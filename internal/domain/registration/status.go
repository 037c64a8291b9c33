package registration

import "strings"

// Status is owned by the server: clients read it, the status-change
// endpoint and the document-completion promotion are the only writers.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusReview      Status = "REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusPreliminary Status = "PRELIMINARY"
	StatusFinal       Status = "FINAL"
	StatusEliminated  Status = "ELIMINATED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusReview:
		return StatusReview, true
	case StatusApproved:
		return StatusApproved, true
	case StatusRejected:
		return StatusRejected, true
	case StatusPreliminary:
		return StatusPreliminary, true
	case StatusFinal:
		return StatusFinal, true
	case StatusEliminated:
		return StatusEliminated, true
	}
	return "", false
}

type DocumentType string

const (
	DocValidation  DocumentType = "VALIDATION"
	DocSponsor     DocumentType = "SPONSOR"
	DocPreliminary DocumentType = "PRELIMINARY"
	DocFinal       DocumentType = "FINAL"
)

func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(strings.ToUpper(strings.TrimSpace(s))) {
	case DocValidation:
		return DocValidation, true
	case DocSponsor:
		return DocSponsor, true
	case DocPreliminary:
		return DocPreliminary, true
	case DocFinal:
		return DocFinal, true
	}
	return "", false
}

// RequiredDocumentTypes are the uploads that move a PENDING
// registration into REVIEW once both are present.
var RequiredDocumentTypes = []DocumentType{DocValidation, DocSponsor}
