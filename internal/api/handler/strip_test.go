package handler

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Due on receipt</p>", "Due on receipt"},
		{"<p>30% now,<br/>70% in 30 days</p>", "30% now,70% in 30 days"},
		{`<a href="https://example.com">terms</a>`, "terms"},
	}
	for _, tc := range cases {
		if got := stripHTML(tc.in); got != tc.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
