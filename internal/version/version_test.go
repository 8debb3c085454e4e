package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func restoreVersion(t *testing.T) {
	t.Helper()

	v, d, c := Version, BuildDate, GitCommit
	t.Cleanup(func() {
		Version, BuildDate, GitCommit = v, d, c
	})
}

func TestGetVersion(t *testing.T) {
	restoreVersion(t)

	for _, v := range []string{"dev", "1.0.0", "v2.1.3", "1.0.0-beta.1", ""} {
		Version = v
		assert.Equal(t, v, GetVersion())
	}
}

func TestGetFullVersion(t *testing.T) {
	restoreVersion(t)

	tests := []struct {
		name      string
		version   string
		buildDate string
		gitCommit string
		want      string
	}{
		{
			name:      "default values",
			version:   "dev",
			buildDate: "unknown",
			gitCommit: "unknown",
			want:      "dev (build: unknown, commit: unknown)",
		},
		{
			name:      "release build",
			version:   "1.2.0",
			buildDate: "2026-10-01T08:00:00Z",
			gitCommit: "9f1c2ab",
			want:      "1.2.0 (build: 2026-10-01T08:00:00Z, commit: 9f1c2ab)",
		},
		{
			name: "empty values",
			want: " (build: , commit: )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			BuildDate = tt.buildDate
			GitCommit = tt.gitCommit

			assert.Equal(t, tt.want, GetFullVersion())
		})
	}
}
