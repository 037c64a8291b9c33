package access

import (
	"testing"

	"competition-portal/internal/domain/competition"
	"competition-portal/internal/domain/registration"
)

var allStatuses = []registration.Status{
	registration.StatusPending,
	registration.StatusReview,
	registration.StatusApproved,
	registration.StatusRejected,
	registration.StatusPreliminary,
	registration.StatusFinal,
	registration.StatusEliminated,
}

func regWith(status registration.Status, competitionName string) *registration.Registration {
	return &registration.Registration{
		Status: status,
		Competition: competition.Competition{
			Name: competitionName,
		},
	}
}

func TestPredicatesNilRegistration(t *testing.T) {
	preds := map[string]func(*registration.Registration) bool{
		"CanEditRegistration":       CanEditRegistration,
		"CanAccessUploadPenyisihan": CanAccessUploadPenyisihan,
		"CanUploadPenyisihan":       CanUploadPenyisihan,
		"CanAccessUploadFinal":      CanAccessUploadFinal,
		"CanUploadFinal":            CanUploadFinal,
	}
	for name, pred := range preds {
		if pred(nil) {
			t.Errorf("%s(nil) = true, want false", name)
		}
	}
}

func TestCanEditRegistration(t *testing.T) {
	editable := map[registration.Status]bool{
		registration.StatusPending:  true,
		registration.StatusRejected: true,
	}
	for _, status := range allStatuses {
		got := CanEditRegistration(regWith(status, "Capture The Flag"))
		if got != editable[status] {
			t.Errorf("CanEditRegistration(%s) = %v, want %v", status, got, editable[status])
		}
	}
}

func TestUploadPredicatesRequireUIUX(t *testing.T) {
	// wrong category: every UI/UX-gated predicate is false for all statuses
	for _, status := range allStatuses {
		reg := regWith(status, "Capture The Flag")
		if CanAccessUploadPenyisihan(reg) || CanUploadPenyisihan(reg) ||
			CanAccessUploadFinal(reg) || CanUploadFinal(reg) {
			t.Errorf("UI/UX-gated predicate returned true for CTF registration with status %s", status)
		}
	}
	// unmatched category behaves the same as a non-UI/UX one
	for _, status := range allStatuses {
		reg := regWith(status, "Mystery Competition")
		if CanAccessUploadPenyisihan(reg) || CanUploadFinal(reg) {
			t.Errorf("UI/UX-gated predicate returned true for unmatched category, status %s", status)
		}
	}
}

func TestPreliminaryViewStatuses(t *testing.T) {
	viewable := map[registration.Status]bool{
		registration.StatusApproved:    true,
		registration.StatusPreliminary: true,
		registration.StatusFinal:       true,
		registration.StatusEliminated:  true,
	}
	uploadable := map[registration.Status]bool{
		registration.StatusApproved:    true,
		registration.StatusPreliminary: true,
	}
	for _, status := range allStatuses {
		reg := regWith(status, "UI/UX Design")
		if got := CanAccessUploadPenyisihan(reg); got != viewable[status] {
			t.Errorf("CanAccessUploadPenyisihan(%s) = %v, want %v", status, got, viewable[status])
		}
		if got := CanUploadPenyisihan(reg); got != uploadable[status] {
			t.Errorf("CanUploadPenyisihan(%s) = %v, want %v", status, got, uploadable[status])
		}
	}
}

func TestUploadIsSubsetOfView(t *testing.T) {
	names := []string{"UI/UX Design", "Capture The Flag", "FTL Sprint", "Unknown Comp"}
	for _, name := range names {
		for _, status := range allStatuses {
			reg := regWith(status, name)
			if CanUploadPenyisihan(reg) && !CanAccessUploadPenyisihan(reg) {
				t.Errorf("upload allowed without view access: %s / %s", name, status)
			}
			if CanUploadFinal(reg) && !CanAccessUploadFinal(reg) {
				t.Errorf("final upload allowed without view access: %s / %s", name, status)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	// A: PENDING UI/UX — editable, no preliminary view
	a := regWith(registration.StatusPending, "UI/UX Design")
	if !CanEditRegistration(a) {
		t.Error("scenario A: edit should be allowed")
	}
	if CanAccessUploadPenyisihan(a) {
		t.Error("scenario A: preliminary view should not be allowed")
	}

	// B: APPROVED UI/UX — view + upload preliminary, no final upload
	b := regWith(registration.StatusApproved, "UI/UX Design")
	if !CanAccessUploadPenyisihan(b) || !CanUploadPenyisihan(b) {
		t.Error("scenario B: preliminary view and upload should be allowed")
	}
	if CanUploadFinal(b) {
		t.Error("scenario B: final upload should not be allowed")
	}

	// C: FINAL UI/UX — final upload, preliminary upload closed but still viewable
	cReg := regWith(registration.StatusFinal, "UI/UX Design")
	if !CanUploadFinal(cReg) {
		t.Error("scenario C: final upload should be allowed")
	}
	if CanUploadPenyisihan(cReg) {
		t.Error("scenario C: preliminary upload should be closed")
	}
	if !CanAccessUploadPenyisihan(cReg) {
		t.Error("scenario C: preliminary view should stay open")
	}

	// D: APPROVED CTF — everything UI/UX-gated is false
	d := regWith(registration.StatusApproved, "Capture The Flag")
	if CanAccessUploadPenyisihan(d) || CanUploadPenyisihan(d) || CanAccessUploadFinal(d) || CanUploadFinal(d) {
		t.Error("scenario D: UI/UX-gated predicates must be false for CTF")
	}
}

func TestAllowedStatusesCopies(t *testing.T) {
	first := AllowedStatuses(ActionEditRegistration)
	if len(first) == 0 {
		t.Fatal("expected statuses for edit_registration")
	}
	first[0] = registration.StatusEliminated
	second := AllowedStatuses(ActionEditRegistration)
	if second[0] == registration.StatusEliminated {
		t.Error("AllowedStatuses must return a copy, not the table slice")
	}
}
