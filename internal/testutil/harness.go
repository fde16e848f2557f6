package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/app"
	"github.com/vk/unitgrid/internal/catalog"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Harness describes one end-to-end run.
type Harness struct {
	// Files maps paths relative to the registry directory to HCL content.
	Files     map[string]string
	Client    string
	Reference string
	Args      []string
	Balances  []string
	// Persistent stores receipts in a SQLite ledger inside the temp dir.
	Persistent bool
	Modules    []catalog.Module
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output     string
	LogOutput  string
	Err        error
	App        *app.App
	LedgerPath string
}

// RunIntegrationTest writes the registry files to a temporary directory,
// builds the app against them and runs it once.
func RunIntegrationTest(t *testing.T, h Harness) *HarnessResult {
	t.Helper()
	ctx := context.Background()

	tmpDir := t.TempDir()
	registryDir := filepath.Join(tmpDir, "registry")
	for name, content := range h.Files {
		filePath := filepath.Join(registryDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	result := &HarnessResult{}
	if h.Persistent {
		result.LedgerPath = filepath.Join(tmpDir, "ledger.db")
	}

	cfg, err := app.NewConfig(app.Config{
		RegistryPaths: []string{registryDir},
		LedgerPath:    result.LedgerPath,
		Client:        h.Client,
		Reference:     h.Reference,
		Args:          h.Args,
		Balances:      h.Balances,
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	if err != nil {
		result.Err = err
		return result
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp, err := app.NewApp(ctx, out, logs, cfg, h.Modules...)
	if err != nil {
		result.Err = err
		result.LogOutput = logs.String()
		return result
	}
	t.Cleanup(func() { _ = testApp.Close() })

	result.App = testApp
	result.Err = testApp.Run(ctx)
	result.Output = out.String()
	result.LogOutput = logs.String()
	if os.Getenv("UNITGRID_TEST_LOGS") == "true" {
		t.Logf("--- LOGS ---\n%s", result.LogOutput)
	}
	return result
}
