package version

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		vcs     map[string]string
		want    string
	}{
		{
			name:    "ldflags win",
			version: "v0.3.0",
			commit:  "abc1234",
			vcs:     map[string]string{"vcs.revision": "ffffffffffff"},
			want:    "v0.3.0 (commit: abc1234)",
		},
		{
			name: "vcs revision is shortened",
			vcs: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.time":     "2026-03-14T09:26:53Z",
			},
			want: "dev-20260314 (commit: 0123456)",
		},
		{
			name: "dirty tree",
			vcs: map[string]string{
				"vcs.revision": "0123456",
				"vcs.modified": "true",
			},
			want: "dev (commit: 0123456-dirty)",
		},
		{
			name: "no build info",
			vcs:  nil,
			want: "dev (commit: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, tt.vcs).String()
			if got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePlatform(t *testing.T) {
	info := resolve("", "", nil)
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("runtime fields not set: %+v", info)
	}
}
