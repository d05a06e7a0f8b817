package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Tools))
}

func TestByCategoryCoversEveryTool(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += len(ByCategory(c))
	}
	require.Equal(t, len(Tools), total, "every tool must belong to a known category")
}

func TestValidateRejectsMisconfiguration(t *testing.T) {
	testCases := []struct {
		scenario string
		defs     []ToolDefinition
	}{
		{
			"duplicate id",
			[]ToolDefinition{
				{ID: "x", Command: "x", Category: CategoryLanguage},
				{ID: "x", Command: "y", Category: CategoryLanguage},
			},
		},
		{
			"empty id",
			[]ToolDefinition{{ID: " ", Command: "x", Category: CategoryLanguage}},
		},
		{
			"empty command",
			[]ToolDefinition{{ID: "x", Command: "", Category: CategoryLanguage}},
		},
		{
			"empty alternate",
			[]ToolDefinition{{ID: "x", Command: "x", AlternateCommands: []string{""}, Category: CategoryLanguage}},
		},
		{
			"unknown category",
			[]ToolDefinition{{ID: "x", Command: "x", Category: Category("languge")}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.scenario, func(t *testing.T) {
			require.Error(t, Validate(tt.defs))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Language ")
	require.NoError(t, err)
	require.Equal(t, CategoryLanguage, c)

	_, err = ParseCategory("nope")
	require.Error(t, err)
}

func TestCandidatesOrder(t *testing.T) {
	d := ToolDefinition{Command: "node", AlternateCommands: []string{"nodejs"}}
	require.Equal(t, []string{"node", "nodejs"}, d.Candidates())

	d = ToolDefinition{Command: "go"}
	require.Equal(t, []string{"go"}, d.Candidates())
}
