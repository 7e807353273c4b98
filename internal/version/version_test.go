package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "no vcs data",
			info: Info{Version: "1.2.3", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "kpalette version 1.2.3 (go1.25.1, linux/amd64)",
		},
		{
			name: "short commit kept whole",
			info: Info{Version: "1.2.3", Commit: "abc", Date: "2026-01-01T00:00:00Z", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "kpalette version 1.2.3 (commit: abc, built: 2026-01-01T00:00:00Z, go1.25.1, linux/amd64)",
		},
		{
			name: "long commit truncated",
			info: Info{Version: "1.2.3", Commit: "0123456789abcdef", Date: "2026-01-01T00:00:00Z", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "kpalette version 1.2.3 (commit: 01234567, built: 2026-01-01T00:00:00Z, go1.25.1, linux/amd64)",
		},
		{
			name: "dirty tree",
			info: Info{Version: "dev", Commit: "0123456789abcdef", Date: "2026-01-01T00:00:00Z", Modified: true, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "kpalette version dev (commit: 01234567+dirty, built: 2026-01-01T00:00:00Z, go1.25.1, linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "feedface"},
			{Key: "vcs.time", Value: "2026-02-03T04:05:06Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	Version, Commit, Date = "dev", unknown, unknown
	got := resolve(bi)
	if got.Version != "v0.4.0" || got.Commit != "feedface" || got.Date != "2026-02-03T04:05:06Z" || !got.Modified {
		t.Errorf("resolve() without ldflags = %+v", got)
	}

	Version, Commit, Date = "1.0.0", "cafebabe", "2026-01-01T00:00:00Z"
	got = resolve(bi)
	if got.Version != "1.0.0" || got.Commit != "cafebabe" || got.Date != "2026-01-01T00:00:00Z" {
		t.Errorf("resolve() with ldflags = %+v", got)
	}

	bi.Main.Version = "(devel)"
	Version = "dev"
	if got := resolve(bi); got.Version != "dev" {
		t.Errorf("resolve() kept devel version %q", got.Version)
	}

	if got := resolve(nil); got.Commit != "cafebabe" {
		t.Errorf("resolve(nil) = %+v", got)
	}
}

func TestString(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, "kpalette version ") {
		t.Errorf("String() = %q", got)
	}
	if Short() == "" {
		t.Error("Short() is empty")
	}
}
