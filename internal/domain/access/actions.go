package access

import (
	"competition-portal/internal/domain/competition"
	"competition-portal/internal/domain/registration"
)

// Action names a status-gated thing a participant can do or see.
type Action string

const (
	ActionEditRegistration  Action = "edit_registration"
	ActionViewPreliminary   Action = "view_preliminary"
	ActionUploadPreliminary Action = "upload_preliminary"
	ActionViewFinal         Action = "view_final"
	ActionUploadFinal       Action = "upload_final"
)

type actionRule struct {
	// nil means any category
	category *competition.Category
	statuses []registration.Status
}

var uiux = competition.CategoryUIUX

// Single source of truth for which statuses permit which action.
// Predicates, the route guard, and handlers all read this table.
var actionRules = map[Action]actionRule{
	ActionEditRegistration: {
		statuses: []registration.Status{registration.StatusPending, registration.StatusRejected},
	},
	// View stays open for finalists and eliminated teams; upload closes
	// once a team is promoted past PRELIMINARY.
	ActionViewPreliminary: {
		category: &uiux,
		statuses: []registration.Status{
			registration.StatusApproved,
			registration.StatusPreliminary,
			registration.StatusFinal,
			registration.StatusEliminated,
		},
	},
	ActionUploadPreliminary: {
		category: &uiux,
		statuses: []registration.Status{
			registration.StatusApproved,
			registration.StatusPreliminary,
		},
	},
	ActionViewFinal: {
		category: &uiux,
		statuses: []registration.Status{registration.StatusFinal},
	},
	ActionUploadFinal: {
		category: &uiux,
		statuses: []registration.Status{registration.StatusFinal},
	},
}

// Allows is the one predicate everything else is built from. A nil
// registration never allows anything.
func Allows(action Action, reg *registration.Registration) bool {
	if reg == nil {
		return false
	}
	rule, ok := actionRules[action]
	if !ok {
		return false
	}
	if rule.category != nil {
		cat, matched := reg.Category()
		if !matched || cat != *rule.category {
			return false
		}
	}
	for _, s := range rule.statuses {
		if reg.Status == s {
			return true
		}
	}
	return false
}

// AllowedStatuses exposes the table for /me-style responses.
func AllowedStatuses(action Action) []registration.Status {
	rule, ok := actionRules[action]
	if !ok {
		return nil
	}
	out := make([]registration.Status, len(rule.statuses))
	copy(out, rule.statuses)
	return out
}
