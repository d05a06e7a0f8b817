package registry

// Category groups tool definitions for scanning. It is a closed set; free-form
// strings are rejected by Validate so a typo cannot silently create an
// unscanned category.
type Category string

const (
	CategoryLanguage       Category = "language"
	CategoryPackageManager Category = "package_manager"
	CategoryAIAgent        Category = "ai_agent"
	CategoryVCS            Category = "vcs"
	CategoryContainer      Category = "container"
	CategoryEditor         Category = "editor"
)

// Categories returns all known categories in scan order.
func Categories() []Category {
	return []Category{
		CategoryLanguage,
		CategoryPackageManager,
		CategoryAIAgent,
		CategoryVCS,
		CategoryContainer,
		CategoryEditor,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLanguage, CategoryPackageManager, CategoryAIAgent,
		CategoryVCS, CategoryContainer, CategoryEditor:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ToolDefinition describes one detectable executable and its aliases.
// Definitions are static configuration; the scanner never mutates them.
type ToolDefinition struct {
	ID          string
	DisplayName string
	Category    Category
	// Command is the canonical binary name; AlternateCommands are fallback
	// names tried in order when the primary is absent.
	Command           string
	AlternateCommands []string
	// VersionArgs overrides the default ["--version"] probe arguments
	// (e.g. `go version`, `java -version`).
	VersionArgs []string
	// Package is the npm package name for agent CLIs distributed via npm;
	// used as a detection fallback by the sequential agent scan.
	Package     string
	UsedFor     []string
	Description string
}

// Candidates returns the command names to probe, primary first.
func (d ToolDefinition) Candidates() []string {
	out := make([]string, 0, 1+len(d.AlternateCommands))
	out = append(out, d.Command)
	out = append(out, d.AlternateCommands...)
	return out
}
