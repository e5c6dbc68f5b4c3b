package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/repository"
	"github.com/alexanderramin/laskuri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededTUIApp(t *testing.T, items ...domain.WorkItem) *App {
	t.Helper()
	app := testApp(t, repository.NewMemoryLedgerRepo())
	ctx := context.Background()
	for _, w := range items {
		_, err := app.Ledger.Add(ctx, w.WorkNumber, w.Price)
		require.NoError(t, err)
	}
	return app
}

func TestTUI_RendersLedger(t *testing.T) {
	app := seededTUIApp(t,
		domain.WorkItem{WorkNumber: "W1", Price: "10"},
		domain.WorkItem{WorkNumber: "W2", Price: "5"},
	)
	d := NewTestDriver(t, app)

	screen := d.Screen()
	assert.Equal(t, ViewLedger, d.ActiveViewID())
	assert.Contains(t, screen, "laskuri")
	assert.Contains(t, screen, "[2 in ledger]")
	assert.Contains(t, screen, "W1")
	assert.Contains(t, screen, "5€")
	assert.Contains(t, screen, "a: add")
}

func TestTUI_EmptyLedger(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	assert.Contains(t, d.Screen(), "No work items yet")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Press("q")

	assert.True(t, d.IsQuitting())
}

func TestTUI_CtrlCQuits(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Press("ctrl+c")

	assert.True(t, d.IsQuitting())
}

func TestTUI_RemoveAtCursorReflectsThroughListener(t *testing.T) {
	app := seededTUIApp(t,
		domain.WorkItem{WorkNumber: "W1", Price: "10"},
		domain.WorkItem{WorkNumber: "W2", Price: "5"},
	)
	d := NewTestDriver(t, app)

	d.Press("down", "d")

	assert.Equal(t, domain.Ledger{{WorkNumber: "W1", Price: "10"}}, d.State().Ledger.snapshot())
	assert.Equal(t, "Removed W2", d.Flash())
	assert.Contains(t, d.Screen(), "[1 in ledger]")
}

func TestTUI_RemoveOnEmptyLedger(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Press("x")

	assert.Equal(t, "Nothing to remove.", d.Flash())
}

func TestTUI_ExternalChangeIsShown(t *testing.T) {
	app := seededTUIApp(t)
	d := NewTestDriver(t, app)

	_, err := app.Ledger.Add(context.Background(), "W9", "3")
	require.NoError(t, err)

	assert.Contains(t, d.Screen(), "W9")
}

func TestTUI_CursorStaysInRange(t *testing.T) {
	app := seededTUIApp(t, domain.WorkItem{WorkNumber: "W1", Price: "10"})
	d := NewTestDriver(t, app)

	d.Press("down", "down", "up", "up", "d")

	assert.Empty(t, d.State().Ledger.snapshot())
}

func TestTUI_AddFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Press("a")
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "› Add")

	// q is typed into the form rather than quitting.
	d.Press("q")
	assert.False(t, d.IsQuitting())

	d.Press("esc")
	assert.Equal(t, ViewLedger, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, "Cancelled.", d.Flash())
	assert.Empty(t, d.State().Ledger.snapshot())
}

func TestTUI_AddItemCmd(t *testing.T) {
	app := seededTUIApp(t)
	d := NewTestDriver(t, app)

	d.Run(addItemCmd(d.State(), "W3", "8"))

	assert.Equal(t, domain.Ledger{{WorkNumber: "W3", Price: "8"}}, d.State().Ledger.snapshot())
	assert.Equal(t, "Added W3", d.Flash())
}

func TestTUI_AddItemCmd_TrimsWorkNumber(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Run(addItemCmd(d.State(), " W3 ", "8"))
	assert.Equal(t, "Added W3", d.Flash())

	d.Run(removeItemCmd(d.State(), " W3 "))
	assert.Equal(t, "Removed W3", d.Flash())
	assert.Empty(t, d.State().Ledger.snapshot())
}

func TestTUI_AddItemCmd_ValidationShownInline(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Run(addItemCmd(d.State(), "", "8"))

	assert.Contains(t, d.Screen(), "work number required")
	assert.Empty(t, d.State().Ledger.snapshot())
}

func TestTUI_SaveFailureShowsWarning(t *testing.T) {
	repo := &testutil.FailingLedgerRepo{
		Inner:   repository.NewMemoryLedgerRepo(),
		SaveErr: errors.New("disk full"),
	}
	d := NewTestDriver(t, testApp(t, repo))

	d.Run(addItemCmd(d.State(), "W1", "10"))

	assert.Contains(t, d.Flash(), "not saved")
	assert.Len(t, d.State().Ledger.snapshot(), 1)
}

func TestTUI_LoadWarningShownOnStart(t *testing.T) {
	repo := &testutil.FailingLedgerRepo{
		Inner:   repository.NewMemoryLedgerRepo(),
		LoadErr: errors.New("locked"),
	}
	app := testApp(t, repo)
	_, err := app.Ledger.Load(context.Background())
	app.loadWarning = err

	d := NewTestDriver(t, app)

	assert.Contains(t, d.Screen(), "could not load")
}

func TestTUI_PriceWithEmptyLedger(t *testing.T) {
	d := NewTestDriver(t, seededTUIApp(t))

	d.Press("p")

	assert.Equal(t, ViewLedger, d.ActiveViewID())
	assert.True(t, strings.HasPrefix(d.Flash(), "Nothing to price"))
}

func TestTUI_PriceFormOpens(t *testing.T) {
	app := seededTUIApp(t,
		domain.WorkItem{WorkNumber: "W1", Price: "10"},
		domain.WorkItem{WorkNumber: "W1", Price: "12"},
		domain.WorkItem{WorkNumber: "W2", Price: "5"},
	)
	d := NewTestDriver(t, app)

	d.Press("p")

	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "› Price")
}

func TestTUI_ResultViewShowsPricing(t *testing.T) {
	app := seededTUIApp(t,
		domain.WorkItem{WorkNumber: "W1", Price: "10"},
		domain.WorkItem{WorkNumber: "W2", Price: "5"},
	)
	d := NewTestDriver(t, app)
	result := app.Ledger.Price(context.Background(), domain.QuantitySelection{"W1": "3", "W2": "2"}, "4")

	d.Run(pushView(newResultView(result)))

	require.Equal(t, ViewResult, d.ActiveViewID())
	screen := d.Screen()
	assert.Contains(t, screen, "€40.00")
	assert.Contains(t, screen, "€10.00")

	d.Press("enter")
	assert.Equal(t, ViewLedger, d.ActiveViewID())
}

func TestTUI_ResultEditReopensForm(t *testing.T) {
	app := seededTUIApp(t, domain.WorkItem{WorkNumber: "W1", Price: "10"})
	d := NewTestDriver(t, app)
	d.State().Quantities = domain.QuantitySelection{"W1": "2"}

	d.Run(pushView(newResultView(app.Ledger.Price(context.Background(), d.State().Quantities, ""))))
	d.Press("p")

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen(), "the result panel is replaced, not stacked")
}

func TestTUI_EscFromResultGoesBack(t *testing.T) {
	app := seededTUIApp(t, domain.WorkItem{WorkNumber: "W1", Price: "10"})
	d := NewTestDriver(t, app)

	d.Run(pushView(newResultView(domain.PricingResult{})))
	d.Press("esc")

	assert.Equal(t, ViewLedger, d.ActiveViewID())
}
