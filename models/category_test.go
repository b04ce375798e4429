package models

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Breakfast", "breakfast"},
		{"North Indian Thali", "north-indian-thali"},
		{"  Chaat  & Snacks ", "chaat-&-snacks"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
