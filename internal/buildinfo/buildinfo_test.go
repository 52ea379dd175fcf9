package buildinfo

import "testing"

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	cases := []struct {
		name, version, commit, date, want string
	}{
		{"empty", "", "", "", "dev"},
		{"version only", "1.2.3", "", "", "1.2.3"},
		{"short commit", "1.2.3", "abc", "", "1.2.3 (commit=abc)"},
		{"long commit", "1.2.3", "0123456789abcdef", "", "1.2.3 (commit=0123456)"},
		{"all", "1.2.3", "0123456789", "2026-10-19", "1.2.3 (commit=0123456, date=2026-10-19)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Version, Commit, Date = tc.version, tc.commit, tc.date
			if got := Summary(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
