package access

import (
	"strings"

	"competition-portal/internal/domain/registration"
)

// Route guard decision table. The edge middleware can only evaluate the
// auth/role rules (it has a token but no registration); the page-tree
// layer re-evaluates with fresh registration data and is authoritative
// for the status-gated rules. Both call Decide so precedence lives in
// exactly one place.

const (
	PathLogin             = "/auth/login"
	PathRegister          = "/auth/register"
	PathDashboard         = "/dashboard"
	PathAdminDashboard    = "/admin/dashboard"
	PathCompetitionSelect = "/competition/select"
	PathBiodata           = "/dashboard/biodata"

	PathUploadPenyisihan = "/dashboard/upload-penyisihan"
	PathUploadFinal      = "/dashboard/upload-final"
	PathBiodataEdit      = "/dashboard/biodata/edit"
)

type Decision struct {
	Allow  bool   `json:"allow"`
	Target string `json:"target,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(target, reason string) Decision {
	return Decision{Target: target, Reason: reason}
}

type gatedPath struct {
	action   Action
	fallback string
	reason   string
}

var gatedPaths = map[string]gatedPath{
	PathUploadPenyisihan: {
		action:   ActionViewPreliminary,
		fallback: PathDashboard,
		reason:   "Preliminary submission is not open for your registration.",
	},
	PathUploadFinal: {
		action:   ActionViewFinal,
		fallback: PathDashboard,
		reason:   "Final submission is only open to finalists.",
	},
	PathBiodataEdit: {
		action:   ActionEditRegistration,
		fallback: PathBiodata,
		reason:   "Biodata can no longer be edited at this stage.",
	},
}

// DenialFor produces the redirect a denied action maps to, matching
// what Decide would emit for the action's page. Upload actions share
// their page's fallback but carry their own closed-window reason.
func DenialFor(action Action) Decision {
	switch action {
	case ActionViewPreliminary:
		return redirect(PathDashboard, gatedPaths[PathUploadPenyisihan].reason)
	case ActionUploadPreliminary:
		return redirect(PathDashboard, "Preliminary uploads have closed for your registration.")
	case ActionViewFinal:
		return redirect(PathDashboard, gatedPaths[PathUploadFinal].reason)
	case ActionUploadFinal:
		return redirect(PathDashboard, "Final uploads are only open to finalists.")
	case ActionEditRegistration:
		return redirect(PathBiodata, gatedPaths[PathBiodataEdit].reason)
	default:
		return redirect(PathDashboard, "Not allowed.")
	}
}

func isPublicPath(path string) bool {
	return path == PathLogin || path == PathRegister
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

// Decide evaluates the redirect policy for one navigation. Rules are
// checked in precedence order; the first match wins.
func Decide(sess *Session, reg *registration.Registration, path string) Decision {
	// 1. Unauthenticated sessions only reach public pages.
	if sess == nil {
		if isPublicPath(path) {
			return allow()
		}
		return redirect(PathLogin, "Please sign in to continue.")
	}

	// 2. Admins live under /admin.
	if sess.IsAdmin() {
		if isAdminPath(path) {
			return allow()
		}
		return redirect(PathAdminDashboard, "")
	}

	// 3. Non-admins never reach /admin.
	if isAdminPath(path) {
		return redirect(PathDashboard, "")
	}

	// 4. No registration yet: everything funnels into competition select.
	if reg == nil {
		if path == PathCompetitionSelect {
			return allow()
		}
		return redirect(PathCompetitionSelect, "Select a competition to get started.")
	}

	// 5. Status-gated pages consult the action table.
	if g, ok := gatedPaths[path]; ok {
		if !Allows(g.action, reg) {
			return redirect(g.fallback, g.reason)
		}
	}

	// 6. Everything else renders.
	return allow()
}
