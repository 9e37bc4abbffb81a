package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/dalemusser/liftadmin/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates registers the shared layout and boots the template engine
// over every set registered so far. Feature view packages register in init,
// so blank-import them in the test package before calling this.
func BootTemplates() error {
	resources.LoadSharedTemplates()
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		return err
	}
	templates.UseEngine(eng, zap.NewNop())
	return nil
}

// RunWithTemplates is a TestMain body: it boots the templates and runs m.
func RunWithTemplates(m *testing.M) {
	if err := BootTemplates(); err != nil {
		fmt.Fprintf(os.Stderr, "boot templates: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}
