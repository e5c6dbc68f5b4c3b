package cli

import (
	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// repriceMsg asks the appModel to replace the result panel with a fresh
// pricing form.
type repriceMsg struct{}

// resultView shows one pricing result.
type resultView struct {
	result domain.PricingResult
}

func newResultView(result domain.PricingResult) *resultView {
	return &resultView{result: result}
}

func (v *resultView) Init() tea.Cmd { return nil }

func (v *resultView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, resultKeys.Edit):
		return v, func() tea.Msg { return repriceMsg{} }
	case key.Matches(keyMsg, resultKeys.Close):
		return v, popView()
	}
	return v, nil
}

func (v *resultView) View() string {
	return "\n" + formatter.FormatPricingResult(v.result) + "\n"
}

func (v *resultView) ID() ViewID    { return ViewResult }
func (v *resultView) Title() string { return "Result" }
func (v *resultView) ShortHelp() []key.Binding {
	return []key.Binding{resultKeys.Edit, resultKeys.Close}
}
