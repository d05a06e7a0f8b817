package probe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		scenario string
		in       string
		want     string
	}{
		{"semver with v prefix", "v20.11.0\n", "20.11.0"},
		{"semver embedded in banner", "Python 3.12.1", "3.12.1"},
		{"semver with prerelease", "cargo 1.76.0-nightly (abc 2024-01-01)", "1.76.0-nightly"},
		{"labeled two-part version", "MyTool version: 2.4", "2.4"},
		{"bare two-part version", "2.1 release build", "2.1"},
		{"no digits falls back to line", "MyTool build system", "MyTool build system"},
		{"long fallback truncated to 30", "abcdefghij abcdefghij abcdefghij abcdefghij", "abcdefghij abcdefghij abcdefgh"},
		{"skips leading blank lines", "\n\n  git version 2.43.0\n", "2.43.0"},
		{"ansi escapes stripped", "\x1b[32mv1.2.3\x1b[0m", "1.2.3"},
		{"empty input", "   \n ", ""},
	}

	for _, tt := range testCases {
		t.Run(tt.scenario, func(t *testing.T) {
			require.Equal(t, tt.want, ParseVersion(tt.in))
		})
	}
}

func TestVersionLess(t *testing.T) {
	testCases := []struct {
		a, b string
		want bool
	}{
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.2.3", false},
		{"v1.2.3", "1.10.0", true},
		{"2.0.0", "1.9.9", false},
		{"1.2", "1.2.1", true},
		{"1.2.3-beta", "1.2.3", true},
		{"1.2.3", "1.2.3-beta", false},
		{"", "1.0.0", false},
	}
	for _, tt := range testCases {
		require.Equal(t, tt.want, VersionLess(tt.a, tt.b), "%s < %s", tt.a, tt.b)
	}
}

func TestNormalizeVersion(t *testing.T) {
	require.Equal(t, "1.2.3", NormalizeVersion(" v1.2.3 "))
	require.Equal(t, "1.2.3", NormalizeVersion("1.2.3"))
}
