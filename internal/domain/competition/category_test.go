package competition

import "testing"

func TestResolveCategory(t *testing.T) {
	cases := []struct {
		name    string
		want    Category
		matched bool
	}{
		{"UI/UX Design Competition", CategoryUIUX, true},
		{"ui/ux design", CategoryUIUX, true},
		{"Capture The Flag (CTF)", CategoryCTF, true},
		{"ctf for beginners", CategoryCTF, true},
		{"FTL Programming Sprint", CategoryFTL, true},
		{"Hackathon 2026", "", false},
		{"", "", false},
		{"UX Design", "", false}, // "ux" alone is not a key
	}

	for _, tc := range cases {
		got, ok := ResolveCategory(tc.name)
		if ok != tc.matched {
			t.Errorf("ResolveCategory(%q) matched=%v, want %v", tc.name, ok, tc.matched)
		}
		if got != tc.want {
			t.Errorf("ResolveCategory(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolveCategoryIdempotent(t *testing.T) {
	name := "UI/UX Design Competition"
	first, ok1 := ResolveCategory(name)
	second, ok2 := ResolveCategory(name)
	if first != second || ok1 != ok2 {
		t.Errorf("ResolveCategory not stable: (%q,%v) then (%q,%v)", first, ok1, second, ok2)
	}
}

func TestCategoryOrDefault(t *testing.T) {
	if got := CategoryOrDefault("CTF Finals", CategoryUIUX); got != CategoryCTF {
		t.Errorf("matched name must ignore fallback, got %q", got)
	}
	if got := CategoryOrDefault("Hackathon", CategoryFTL); got != CategoryFTL {
		t.Errorf("unmatched name must use fallback, got %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	if cat, ok := ParseCategory("ui_ux"); !ok || cat != CategoryUIUX {
		t.Errorf("ParseCategory(ui_ux) = %q, %v", cat, ok)
	}
	if cat, ok := ParseCategory(" ctf "); !ok || cat != CategoryCTF {
		t.Errorf("ParseCategory(' ctf ') = %q, %v", cat, ok)
	}
	if _, ok := ParseCategory("robotics"); ok {
		t.Error("ParseCategory(robotics) should not match")
	}
}
