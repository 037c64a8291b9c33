package access

import (
	"testing"

	"competition-portal/internal/domain/registration"
)

func userSession() *Session {
	return &Session{UserID: 7, Username: "alice", Role: "user"}
}

func adminSession() *Session {
	return &Session{UserID: 1, Username: "root", Role: "admin"}
}

func TestDecideUnauthenticated(t *testing.T) {
	// public paths stay reachable
	for _, path := range []string{PathLogin, PathRegister} {
		if dec := Decide(nil, nil, path); !dec.Allow {
			t.Errorf("Decide(nil, nil, %s) should allow, got redirect to %s", path, dec.Target)
		}
	}

	// everything else redirects to login
	for _, path := range []string{PathDashboard, PathBiodataEdit, PathUploadFinal, PathAdminDashboard, "/anything"} {
		dec := Decide(nil, nil, path)
		if dec.Allow || dec.Target != PathLogin {
			t.Errorf("Decide(nil, nil, %s) = %+v, want redirect to %s", path, dec, PathLogin)
		}
	}
}

func TestDecideAdminRouting(t *testing.T) {
	sess := adminSession()

	if dec := Decide(sess, nil, PathAdminDashboard); !dec.Allow {
		t.Errorf("admin on admin path should be allowed, got %+v", dec)
	}
	if dec := Decide(sess, nil, "/admin/registrations"); !dec.Allow {
		t.Errorf("admin on nested admin path should be allowed, got %+v", dec)
	}

	dec := Decide(sess, nil, PathDashboard)
	if dec.Allow || dec.Target != PathAdminDashboard {
		t.Errorf("admin on user path = %+v, want redirect to %s", dec, PathAdminDashboard)
	}
}

func TestDecideNonAdminOnAdminPath(t *testing.T) {
	reg := regWith(registration.StatusApproved, "UI/UX Design")
	dec := Decide(userSession(), reg, PathAdminDashboard)
	if dec.Allow || dec.Target != PathDashboard {
		t.Errorf("non-admin on admin path = %+v, want redirect to %s", dec, PathDashboard)
	}
}

func TestDecideNoRegistration(t *testing.T) {
	sess := userSession()

	if dec := Decide(sess, nil, PathCompetitionSelect); !dec.Allow {
		t.Errorf("competition select should be reachable without a registration, got %+v", dec)
	}

	for _, path := range []string{PathDashboard, PathBiodata, PathUploadPenyisihan} {
		dec := Decide(sess, nil, path)
		if dec.Allow || dec.Target != PathCompetitionSelect {
			t.Errorf("Decide(no reg, %s) = %+v, want redirect to %s", path, dec, PathCompetitionSelect)
		}
	}
}

func TestDecideStatusGatedPaths(t *testing.T) {
	sess := userSession()

	cases := []struct {
		status registration.Status
		name   string
		path   string
		allow  bool
	}{
		{registration.StatusPending, "UI/UX Design", PathBiodataEdit, true},
		{registration.StatusRejected, "UI/UX Design", PathBiodataEdit, true},
		{registration.StatusApproved, "UI/UX Design", PathBiodataEdit, false},
		{registration.StatusApproved, "UI/UX Design", PathUploadPenyisihan, true},
		{registration.StatusPending, "UI/UX Design", PathUploadPenyisihan, false},
		{registration.StatusEliminated, "UI/UX Design", PathUploadPenyisihan, true},
		{registration.StatusFinal, "UI/UX Design", PathUploadFinal, true},
		{registration.StatusApproved, "UI/UX Design", PathUploadFinal, false},
		{registration.StatusApproved, "Capture The Flag", PathUploadPenyisihan, false},
	}

	for _, tc := range cases {
		reg := regWith(tc.status, tc.name)
		dec := Decide(sess, reg, tc.path)
		if dec.Allow != tc.allow {
			t.Errorf("Decide(%s/%s, %s) allow=%v, want %v", tc.status, tc.name, tc.path, dec.Allow, tc.allow)
		}
		if !tc.allow && dec.Reason == "" {
			t.Errorf("denied navigation to %s must carry a reason", tc.path)
		}
	}
}

func TestDecideGatedFallbacks(t *testing.T) {
	sess := userSession()

	dec := Decide(sess, regWith(registration.StatusApproved, "UI/UX Design"), PathBiodataEdit)
	if dec.Target != PathBiodata {
		t.Errorf("biodata edit denial should fall back to %s, got %s", PathBiodata, dec.Target)
	}

	dec = Decide(sess, regWith(registration.StatusPending, "UI/UX Design"), PathUploadPenyisihan)
	if dec.Target != PathDashboard {
		t.Errorf("upload page denial should fall back to %s, got %s", PathDashboard, dec.Target)
	}
}

func TestDecideAllowsUngatedPaths(t *testing.T) {
	reg := regWith(registration.StatusReview, "Capture The Flag")
	for _, path := range []string{PathDashboard, PathBiodata, "/dashboard/announcements"} {
		if dec := Decide(userSession(), reg, path); !dec.Allow {
			t.Errorf("ungated path %s should be allowed, got %+v", path, dec)
		}
	}
}

func TestDenialFor(t *testing.T) {
	cases := []struct {
		action Action
		target string
	}{
		{ActionEditRegistration, PathBiodata},
		{ActionViewPreliminary, PathDashboard},
		{ActionUploadPreliminary, PathDashboard},
		{ActionViewFinal, PathDashboard},
		{ActionUploadFinal, PathDashboard},
	}
	for _, tc := range cases {
		dec := DenialFor(tc.action)
		if dec.Allow {
			t.Errorf("DenialFor(%s) must not allow", tc.action)
		}
		if dec.Target != tc.target {
			t.Errorf("DenialFor(%s).Target = %s, want %s", tc.action, dec.Target, tc.target)
		}
		if dec.Reason == "" {
			t.Errorf("DenialFor(%s) must carry a reason", tc.action)
		}
	}
}
