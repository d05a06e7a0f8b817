package probe

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunMissingBinary(t *testing.T) {
	res := Run(context.Background(), "devscope-test-no-such-binary", nil, time.Second)
	require.Equal(t, Result{}, res)
}

func TestRunEmptyCommand(t *testing.T) {
	require.Equal(t, Result{}, Run(context.Background(), "  ", nil, time.Second))
}

func TestRunParsesOutput(t *testing.T) {
	requireTool(t, "echo")
	res := Run(context.Background(), "echo", []string{"v1.2.3"}, 5*time.Second)
	require.True(t, res.Exists)
	require.Equal(t, "1.2.3", res.Version)
	require.NotEmpty(t, res.Path)
}

func TestRunUnparseableOutputStillExists(t *testing.T) {
	requireTool(t, "echo")
	res := Run(context.Background(), "echo", []string{"MyTool build system"}, 5*time.Second)
	require.True(t, res.Exists)
	require.Equal(t, "MyTool build system", res.Version)
}

// A hung subprocess must resolve within timeoutMs plus a small margin and
// report not installed.
func TestRunTimeoutContainment(t *testing.T) {
	requireTool(t, "sleep")
	start := time.Now()
	res := Run(context.Background(), "sleep", []string{"30"}, 200*time.Millisecond)
	require.False(t, res.Exists)
	require.Less(t, time.Since(start), 5*time.Second)
}

func requireTool(t *testing.T, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skipf("%s not available on windows", name)
	}
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not on PATH", name)
	}
}
