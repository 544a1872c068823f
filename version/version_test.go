package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit := Version, GitCommit
	return func() {
		Version = origVersion
		GitCommit = origCommit
	}
}

func TestGetWithOverrides(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.2.0")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "abc1234")
	}
}

func TestGetWithoutOverrides(t *testing.T) {
	defer saveAndRestore()()
	Version = ""
	GitCommit = ""

	info := Get()
	if info.Version == "" {
		t.Error("Version resolved to empty")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"bare version", Info{Version: "1.2.0"}, "1.2.0"},
		{"with commit", Info{Version: "1.2.0", GitCommit: "abc1234"}, "1.2.0-abc1234"},
		{"modified", Info{Version: "devel", GitCommit: "abc1234", Modified: true}, "devel-abc1234-modified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringIsSingleToken(t *testing.T) {
	if s := Get().String(); strings.ContainsAny(s, " \n") {
		t.Errorf("String() contains whitespace: %q", s)
	}
}
