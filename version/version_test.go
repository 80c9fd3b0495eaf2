package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetWithLinkerValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	GitCommit = "abc1234"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
}

func TestDirtyVersionIsNotRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"

	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestApplyVCS(t *testing.T) {
	info := Info{Version: "dev"}
	applyVCS(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2025-03-04T05:06:07Z"},
	})

	if info.GitCommit != "0123456" {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
	if !info.IsDirty {
		t.Error("expected dirty flag")
	}
	if info.BuildTime != "2025-03-04T05:06:07Z" {
		t.Errorf("expected vcs build time, got %q", info.BuildTime)
	}
}

func TestApplyVCSKeepsLinkerValues(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "feed123", BuildTime: "2024-01-01T00:00:00Z"}
	applyVCS(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-03-04T05:06:07Z"},
	})
	if info.GitCommit != "feed123" {
		t.Errorf("expected linker commit to win, got %q", info.GitCommit)
	}
	if info.BuildTime != "2024-01-01T00:00:00Z" {
		t.Errorf("expected linker build time to win, got %q", info.BuildTime)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc1234",
		BuildDate: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	got := info.String()
	if got != "1.0.0-abc1234 (built 2024-01-15T10:30:00Z)" {
		t.Errorf("unexpected string %q", got)
	}
	if s := (Info{Version: "dev"}).String(); s != "dev" {
		t.Errorf("expected 'dev', got %q", s)
	}
}

func TestFields(t *testing.T) {
	f := Info{Version: "1.0.0", GitCommit: "abc1234"}.Fields()
	if f["version"] != "1.0.0" || f["git_commit"] != "abc1234" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.0.0"
	GitCommit = "cafe123"

	if sv := GetShortVersion(); !strings.HasPrefix(sv, "2.0.0-cafe123") {
		t.Errorf("expected short version to start with '2.0.0-cafe123', got %q", sv)
	}
}
