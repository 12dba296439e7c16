package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"phoneflip/internal/api"
	"phoneflip/internal/phone"
)

// Modal forms collect input for the three mutating workflows. Opening a form
// is always allowed; the busy guard is checked at submit time, right before
// anything would reach the gateway.

func (m Model) openAddForm() Model {
	m.form = formAddPhone
	m.addFocus = fieldBrand
	for i := range m.addInputs {
		m.addInputs[i].SetValue("")
		m.addInputs[i].Blur()
	}
	m.addInputs[fieldBrand].Focus()
	return m
}

func (m Model) openBudgetForm() Model {
	m.form = formBudget
	m.budgetInput.SetValue("")
	m.budgetInput.Focus()
	return m
}

func (m Model) openSellForm(p phone.Phone) Model {
	m.form = formSellPrice
	m.sellTarget = p
	m.sellInput.SetValue("")
	m.sellInput.Focus()
	return m
}

func (m Model) closeForm() Model {
	m.form = formNone
	for i := range m.addInputs {
		m.addInputs[i].Blur()
	}
	m.budgetInput.Blur()
	m.sellInput.Blur()
	return m
}

// ---------------------------------------------------------------------------
// Add phone
// ---------------------------------------------------------------------------

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.closeForm(), nil
	case "tab", "down":
		return m.cycleAddFocus(1), nil
	case "shift+tab", "up":
		return m.cycleAddFocus(-1), nil
	case "enter":
		return m.submitAddForm()
	}
	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m Model) cycleAddFocus(delta int) Model {
	m.addInputs[m.addFocus].Blur()
	m.addFocus = (m.addFocus + delta + fieldCount) % fieldCount
	m.addInputs[m.addFocus].Focus()
	return m
}

func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	brand := m.addInputs[fieldBrand].Value()
	model := m.addInputs[fieldModel].Value()
	price := m.addInputs[fieldPrice].Value()
	notes := m.addInputs[fieldNotes].Value()

	buyPrice, err := validateNewPhone(brand, model, price)
	if err != nil {
		return m.pushNotice(noticeWarning, "Please fill in all required fields")
	}
	if m.busy {
		return m, nil
	}
	m.busy = true
	m = m.closeForm()
	return m, addPhoneCmd(m.gw, api.NewPhone{
		Brand:    trimmed(brand),
		Model:    trimmed(model),
		BuyPrice: buyPrice,
		Notes:    trimmed(notes),
	}, "Phone added successfully!", "Failed to add phone")
}

// ---------------------------------------------------------------------------
// Budget
// ---------------------------------------------------------------------------

func (m Model) updateBudgetForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.closeForm(), nil
	case "enter":
		return m.submitBudgetForm()
	}
	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return m, cmd
}

func (m Model) submitBudgetForm() (tea.Model, tea.Cmd) {
	amount, err := parseAmount(m.budgetInput.Value())
	if err != nil {
		return m.pushNotice(noticeWarning, "Please enter a valid amount")
	}
	if m.busy {
		return m, nil
	}
	m.busy = true
	m = m.closeForm()
	return m, saveBudgetCmd(m.gw, amount)
}

// ---------------------------------------------------------------------------
// Sell price
// ---------------------------------------------------------------------------

func (m Model) updateSellForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.closeForm(), nil
	case "enter":
		return m.submitSellForm()
	}
	var cmd tea.Cmd
	m.sellInput, cmd = m.sellInput.Update(msg)
	return m, cmd
}

// submitSellForm validates the sell price and requests the transition into
// sold. Invalid input aborts the whole transition with a warning; no request
// is made.
func (m Model) submitSellForm() (tea.Model, tea.Cmd) {
	price, err := parseSellPrice(m.sellInput.Value())
	if err != nil {
		next := m.closeForm()
		return next.pushNotice(noticeWarning, "Please enter a valid selling price")
	}
	if m.busy {
		return m.closeForm(), nil
	}
	m.busy = true
	target := m.sellTarget
	m = m.closeForm()
	return m, changeStateCmd(m.gw, target.ID, api.StateChange{State: phone.StateSold, SellPrice: &price},
		"Phone state updated!", "Failed to update phone state")
}
