package ident

import "testing"

func TestShort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1a2b3c4d-0000-4000-8000-000000000000", "1a2b3c4d"},
		{"12345678", "12345678"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Short(tt.in); got != tt.want {
			t.Errorf("Short(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPackDirs(t *testing.T) {
	if got := BehaviorPackDir("1a2b3c4d"); got != "behavior_pack_1a2b3c4d" {
		t.Errorf("BehaviorPackDir = %q", got)
	}
	if got := ResourcePackDir("deadbeef"); got != "resource_pack_deadbeef" {
		t.Errorf("ResourcePackDir = %q", got)
	}
}
