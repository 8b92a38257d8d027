package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vk/nodecanvas/internal/config"
	"github.com/vk/nodecanvas/internal/testutil"
)

// SetupAppTest writes scene into a temporary directory and builds an App for
// it with debug text logging. Set NODECANVAS_TEST_LOGS=true to dump the output.
func SetupAppTest(t *testing.T, scene string, settings *config.Config) (*App, *testutil.SafeBuffer) {
	t.Helper()

	root := testutil.WriteFiles(t, map[string]string{"scene/main.hcl": scene})

	cfg := config.Default()
	if settings != nil {
		cfg = *settings
	}
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "text"

	out := &testutil.SafeBuffer{}
	testApp := NewApp(out, &Config{
		ScenePaths: []string{filepath.Join(root, "scene")},
		Settings:   cfg,
	})

	t.Cleanup(func() {
		if os.Getenv("NODECANVAS_TEST_LOGS") == "true" {
			t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	return testApp, out
}
