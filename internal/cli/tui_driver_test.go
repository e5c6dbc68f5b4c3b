package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/laskuri/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals that
// the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 100x30 and runs Init.
// The ledger subscription is released when the test ends.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	t.Cleanup(m.close)

	return &TestDriver{Driver: teatest.New(t, m, teatest.WithSize(100, 30))}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Flash returns the current status line text.
func (d *TestDriver) Flash() string {
	return d.appModel().flash.text
}

// IsQuitting reports whether the app asked to quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Screen returns the rendered view without ANSI styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}
