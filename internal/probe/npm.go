package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// NpmGlobalVersion queries npm for a globally installed package version.
// Used as a fallback for agent CLIs whose launcher script is not on PATH.
func NpmGlobalVersion(ctx context.Context, pkg string) (string, error) {
	out, err := runCmd(ctx, "npm", "ls", "-g", "--depth=0", pkg, "--json")
	if err != nil && out == "" {
		return "", err
	}
	var data struct {
		Dependencies map[string]struct {
			Version string `json:"version"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		return "", err
	}
	if d, ok := data.Dependencies[pkg]; ok {
		return d.Version, nil
	}
	return "", fmt.Errorf("package not found: %s", pkg)
}

// NpmLatestVersion queries the npm registry for the latest dist-tag.
func NpmLatestVersion(ctx context.Context, pkg string) (string, error) {
	out, err := runCmd(ctx, "npm", "view", pkg, "version", "--json")
	if err != nil && out == "" {
		return "", err
	}
	s := strings.TrimSpace(out)
	// npm may return a bare JSON string like "1.2.3" or plain 1.2.3
	if strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") {
		return strings.Trim(s, "\""), nil
	}
	var v string
	if json.Unmarshal([]byte(s), &v) == nil && v != "" {
		return v, nil
	}
	return strings.Split(s, "\n")[0], nil
}
