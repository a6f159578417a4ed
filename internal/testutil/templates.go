package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/app/resources"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates parses and installs the template engine once per test
// binary, so handlers that render pages can run end to end. Feature
// template sets register themselves via package init; importing the
// feature under test is enough to include its templates.
func BootTemplates(t *testing.T) {
	t.Helper()
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		logger := zap.NewNop()
		eng := templates.New(false)
		if err := eng.Boot(logger); err != nil {
			bootErr = err
			return
		}
		templates.UseEngine(eng, logger)
	})
	if bootErr != nil {
		t.Fatalf("template engine boot failed: %v", bootErr)
	}
}
