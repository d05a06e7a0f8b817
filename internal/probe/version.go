package probe

import (
	"regexp"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Ordered patterns tried against the first non-empty output line. The chain
// is kept as-is for compatibility with prior scans even though it can pick up
// unrelated numbers (e.g. a build timestamp preceding the real version).
var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`v?(\d+\.\d+\.\d+[-.\w]*)`),
	regexp.MustCompile(`(?i)version\s*:?\s*v?(\d+\.\d+[-.\w]*)`),
	regexp.MustCompile(`(\d+\.\d+[-.\w]*)`),
}

// versionFallbackLen caps the raw-text fallback when no pattern matches.
const versionFallbackLen = 30

// ParseVersion extracts a human-readable version from raw probe output.
// ANSI escapes are stripped first since some CLIs color their banner.
// When no pattern matches, the first line is returned truncated rather than
// discarding the output entirely.
func ParseVersion(s string) string {
	s = strings.TrimSpace(xansi.Strip(s))
	if s == "" {
		return ""
	}
	line := firstNonEmptyLine(s)
	for _, re := range versionPatterns {
		if m := re.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	if runes := []rune(line); len(runes) > versionFallbackLen {
		return strings.TrimSpace(string(runes[:versionFallbackLen]))
	}
	return line
}

func firstNonEmptyLine(s string) string {
	for _, ln := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			return t
		}
	}
	return ""
}

// NormalizeVersion strips whitespace and a leading "v".
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	return strings.TrimPrefix(v, "v")
}

// VersionLess compares two semantic versions, best-effort.
// Returns true if a < b.
func VersionLess(a, b string) bool {
	a = NormalizeVersion(a)
	b = NormalizeVersion(b)
	if a == "" || b == "" {
		return false
	}
	as := strings.SplitN(a, "-", 2)[0]
	bs := strings.SplitN(b, "-", 2)[0]
	ap := strings.Split(as, ".")
	bp := strings.Split(bs, ".")
	for len(ap) < 3 {
		ap = append(ap, "0")
	}
	for len(bp) < 3 {
		bp = append(bp, "0")
	}
	for i := 0; i < 3; i++ {
		av := atoiSafe(ap[i])
		bv := atoiSafe(bp[i])
		if av < bv {
			return true
		}
		if av > bv {
			return false
		}
	}
	// Equal numeric parts: a pre-release sorts below the release.
	return strings.Contains(a, "-") && !strings.Contains(b, "-")
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
