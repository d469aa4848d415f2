package main

import "testing"

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", "blocks", false},
		{"normal", "blocks", false},
		{"timed", "blocks_timed", false},
		{"bottomsUp", "blocks_bottomsup", false},
		{"blocks_timed", "blocks_timed", false},
		{"snake", "", true},
	}

	for _, tc := range tests {
		got, err := resolveGameID(tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("resolveGameID(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("resolveGameID(%q) = %q, expected %q", tc.arg, got, tc.want)
		}
	}
}
