package registry

// Tools is the built-in catalog of detectable developer tools.
var Tools = []ToolDefinition{
	// Languages
	{
		ID:          "node",
		DisplayName: "Node.js",
		Category:    CategoryLanguage,
		Command:     "node",
		AlternateCommands: []string{
			"nodejs",
		},
		UsedFor:     []string{"javascript", "typescript"},
		Description: "JavaScript runtime built on V8.",
	},
	{
		ID:          "python",
		DisplayName: "Python",
		Category:    CategoryLanguage,
		Command:     "python3",
		AlternateCommands: []string{
			"python",
		},
		UsedFor:     []string{"python", "scripting", "ml"},
		Description: "General-purpose interpreted language.",
	},
	{
		ID:          "go",
		DisplayName: "Go",
		Category:    CategoryLanguage,
		Command:     "go",
		VersionArgs: []string{"version"},
		UsedFor:     []string{"go", "services", "cli"},
		Description: "Statically typed compiled language from Google.",
	},
	{
		ID:          "rust",
		DisplayName: "Rust",
		Category:    CategoryLanguage,
		Command:     "rustc",
		UsedFor:     []string{"rust", "systems"},
		Description: "Memory-safe systems programming language.",
	},
	{
		ID:          "java",
		DisplayName: "Java",
		Category:    CategoryLanguage,
		Command:     "java",
		VersionArgs: []string{"-version"},
		UsedFor:     []string{"java", "jvm"},
		Description: "JVM language and runtime.",
	},
	{
		ID:          "ruby",
		DisplayName: "Ruby",
		Category:    CategoryLanguage,
		Command:     "ruby",
		UsedFor:     []string{"ruby", "rails"},
		Description: "Dynamic language focused on simplicity.",
	},
	{
		ID:          "php",
		DisplayName: "PHP",
		Category:    CategoryLanguage,
		Command:     "php",
		UsedFor:     []string{"php", "web"},
		Description: "Server-side scripting language.",
	},
	{
		ID:          "dotnet",
		DisplayName: ".NET SDK",
		Category:    CategoryLanguage,
		Command:     "dotnet",
		UsedFor:     []string{"csharp", "fsharp"},
		Description: "Cross-platform .NET SDK and runtime.",
	},
	{
		ID:          "deno",
		DisplayName: "Deno",
		Category:    CategoryLanguage,
		Command:     "deno",
		UsedFor:     []string{"javascript", "typescript"},
		Description: "Secure runtime for JavaScript and TypeScript.",
	},

	// Package managers
	{
		ID:          "npm",
		DisplayName: "npm",
		Category:    CategoryPackageManager,
		Command:     "npm",
		UsedFor:     []string{"javascript"},
		Description: "Node.js package manager.",
	},
	{
		ID:          "pnpm",
		DisplayName: "pnpm",
		Category:    CategoryPackageManager,
		Command:     "pnpm",
		UsedFor:     []string{"javascript"},
		Description: "Fast, disk-efficient Node.js package manager.",
	},
	{
		ID:          "yarn",
		DisplayName: "Yarn",
		Category:    CategoryPackageManager,
		Command:     "yarn",
		UsedFor:     []string{"javascript"},
		Description: "Alternative Node.js package manager.",
	},
	{
		ID:          "bun",
		DisplayName: "Bun",
		Category:    CategoryPackageManager,
		Command:     "bun",
		UsedFor:     []string{"javascript", "runtime"},
		Description: "All-in-one JavaScript runtime and package manager.",
	},
	{
		ID:          "pip",
		DisplayName: "pip",
		Category:    CategoryPackageManager,
		Command:     "pip3",
		AlternateCommands: []string{
			"pip",
		},
		UsedFor:     []string{"python"},
		Description: "Python package installer.",
	},
	{
		ID:          "uv",
		DisplayName: "uv",
		Category:    CategoryPackageManager,
		Command:     "uv",
		UsedFor:     []string{"python"},
		Description: "Fast Python package and project manager.",
	},
	{
		ID:          "poetry",
		DisplayName: "Poetry",
		Category:    CategoryPackageManager,
		Command:     "poetry",
		UsedFor:     []string{"python"},
		Description: "Python dependency management and packaging.",
	},
	{
		ID:          "cargo",
		DisplayName: "Cargo",
		Category:    CategoryPackageManager,
		Command:     "cargo",
		UsedFor:     []string{"rust"},
		Description: "Rust package manager and build tool.",
	},
	{
		ID:          "brew",
		DisplayName: "Homebrew",
		Category:    CategoryPackageManager,
		Command:     "brew",
		UsedFor:     []string{"macos", "linux"},
		Description: "Package manager for macOS and Linux.",
	},

	// AI coding agents and runtimes
	{
		ID:          "claude",
		DisplayName: "Claude Code",
		Category:    CategoryAIAgent,
		Command:     "claude",
		AlternateCommands: []string{
			"claude-code",
		},
		Package:     "@anthropic-ai/claude-code",
		UsedFor:     []string{"ai", "coding-agent"},
		Description: "Anthropic's terminal coding agent.",
	},
	{
		ID:          "codex",
		DisplayName: "Codex CLI",
		Category:    CategoryAIAgent,
		Command:     "codex",
		AlternateCommands: []string{
			"openai-codex",
		},
		Package:     "@openai/codex",
		UsedFor:     []string{"ai", "coding-agent"},
		Description: "OpenAI's terminal coding agent.",
	},
	{
		ID:          "gemini",
		DisplayName: "Gemini CLI",
		Category:    CategoryAIAgent,
		Command:     "gemini",
		Package:     "@google/gemini-cli",
		UsedFor:     []string{"ai", "coding-agent"},
		Description: "Google's terminal coding agent.",
	},
	{
		ID:          "aider",
		DisplayName: "Aider",
		Category:    CategoryAIAgent,
		Command:     "aider",
		UsedFor:     []string{"ai", "pair-programming"},
		Description: "AI pair programming in the terminal.",
	},
	{
		ID:          "ollama",
		DisplayName: "Ollama",
		Category:    CategoryAIAgent,
		Command:     "ollama",
		UsedFor:     []string{"ai", "local-llm"},
		Description: "Run large language models locally.",
	},

	// Version control
	{
		ID:          "git",
		DisplayName: "Git",
		Category:    CategoryVCS,
		Command:     "git",
		UsedFor:     []string{"vcs"},
		Description: "Distributed version control system.",
	},
	{
		ID:          "gh",
		DisplayName: "GitHub CLI",
		Category:    CategoryVCS,
		Command:     "gh",
		UsedFor:     []string{"vcs", "github"},
		Description: "GitHub from the command line.",
	},
	{
		ID:          "hg",
		DisplayName: "Mercurial",
		Category:    CategoryVCS,
		Command:     "hg",
		UsedFor:     []string{"vcs"},
		Description: "Distributed version control system.",
	},

	// Containers and orchestration
	{
		ID:          "docker",
		DisplayName: "Docker",
		Category:    CategoryContainer,
		Command:     "docker",
		UsedFor:     []string{"containers"},
		Description: "Container build and runtime tooling.",
	},
	{
		ID:          "podman",
		DisplayName: "Podman",
		Category:    CategoryContainer,
		Command:     "podman",
		UsedFor:     []string{"containers"},
		Description: "Daemonless container engine.",
	},
	{
		ID:          "kubectl",
		DisplayName: "kubectl",
		Category:    CategoryContainer,
		Command:     "kubectl",
		VersionArgs: []string{"version", "--client", "--output=yaml"},
		UsedFor:     []string{"kubernetes"},
		Description: "Kubernetes command-line client.",
	},

	// Editors
	{
		ID:          "vscode",
		DisplayName: "Visual Studio Code",
		Category:    CategoryEditor,
		Command:     "code",
		AlternateCommands: []string{
			"code-insiders",
		},
		UsedFor:     []string{"editor"},
		Description: "Microsoft's extensible code editor.",
	},
	{
		ID:          "neovim",
		DisplayName: "Neovim",
		Category:    CategoryEditor,
		Command:     "nvim",
		UsedFor:     []string{"editor", "terminal"},
		Description: "Hyperextensible Vim-based editor.",
	},
	{
		ID:          "zed",
		DisplayName: "Zed",
		Category:    CategoryEditor,
		Command:     "zed",
		UsedFor:     []string{"editor"},
		Description: "High-performance collaborative editor.",
	},
}
