package version

import (
	"runtime/debug"
	"testing"
)

func noBuildInfo() (*debug.BuildInfo, bool) { return nil, false }

func TestResolveDefaultsToDev(t *testing.T) {
	t.Parallel()
	info := resolve("", "", "", noBuildInfo)
	if info.Version != devVersion {
		t.Fatalf("version = %q, want %q", info.Version, devVersion)
	}
	if info.GoVersion == "" {
		t.Fatal("expected go version to be set")
	}
	if got := info.String(); got != devVersion {
		t.Fatalf("String() = %q, want %q", got, devVersion)
	}
}

func TestResolveLdflagsWin(t *testing.T) {
	t.Parallel()
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.0.9"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "ffffffffffffffffffff"},
				{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
			},
		}, true
	}
	info := resolve("v1.2.3", "0123456789abcdef", "", read)
	if info.Version != "v1.2.3" {
		t.Fatalf("version = %q", info.Version)
	}
	if info.Commit != "0123456789abcdef" {
		t.Fatalf("commit = %q", info.Commit)
	}
	if info.BuildTime != "2020-01-01T00:00:00Z" {
		t.Fatalf("build time = %q", info.BuildTime)
	}
	if got, want := info.String(), "v1.2.3 (0123456789ab)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestResolveFromBuildInfo(t *testing.T) {
	t.Parallel()
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
		}, true
	}
	info := resolve("", "", "", read)
	if info.Version != devVersion {
		t.Fatalf("version = %q, want %q", info.Version, devVersion)
	}
	if got, want := info.String(), "dev (abc123)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
