// Package tui is the terminal front end. The Model owns the in-memory
// snapshot (phones, budget, stats, hidden-id set) and mediates between the
// backend gateway and the lipgloss renderers: fetch -> render -> user action
// -> validate -> mutate -> full refetch -> render.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phoneflip/internal/api"
	"phoneflip/internal/config"
	"phoneflip/internal/money"
	"phoneflip/internal/phone"
)

const appName = "Phoneflip"

type formKind int

const (
	formNone formKind = iota
	formAddPhone
	formBudget
	formSellPrice
)

// Add-phone form field order.
const (
	fieldBrand = iota
	fieldModel
	fieldPrice
	fieldNotes
	fieldCount
)

// Model is the single source of truth for client-side state. phones, budget
// and stats are always a verbatim snapshot of the last successful fetch;
// no field of theirs is ever patched locally.
type Model struct {
	gw        Gateway
	fmtr      money.Formatter
	noticeTTL time.Duration

	phones []phone.Phone
	budget phone.Budget
	stats  phone.Stats

	// hidden is the session-scoped display filter. It only grows; phones in
	// it remain in the snapshot and still count toward budget and stats.
	hidden map[int64]struct{}

	// busy is the one-mutation-in-flight guard. It covers the mutation call
	// and the refetch that follows it; concurrent mutating attempts are
	// dropped, not queued.
	busy  bool
	ready bool

	status string

	cursor   int
	topIndex int

	form        formKind
	addInputs   []textinput.Model
	addFocus    int
	budgetInput textinput.Model
	sellInput   textinput.Model
	sellTarget  phone.Phone

	pal *palette

	notices []notice

	keys      keyMap
	modalKeys modalKeyMap
	width     int
	height    int
}

// New builds the initial model around a gateway.
func New(gw Gateway, cfg config.Config) Model {
	ttl := cfg.UI.NoticeTTL
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	addInputs := make([]textinput.Model, fieldCount)
	for i, placeholder := range []string{"Brand", "Model", "Buy price", "Notes (optional)"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 100
		in.Width = 32
		addInputs[i] = in
	}
	addInputs[fieldBrand].Focus()

	budgetInput := textinput.New()
	budgetInput.Placeholder = "Total money"
	budgetInput.CharLimit = 20
	budgetInput.Width = 24

	sellInput := textinput.New()
	sellInput.Placeholder = "Selling price"
	sellInput.CharLimit = 20
	sellInput.Width = 24

	return Model{
		gw:          gw,
		fmtr:        money.NewFormatter(cfg.UI.Currency),
		noticeTTL:   ttl,
		hidden:      make(map[int64]struct{}),
		status:      "Loading...",
		addInputs:   addInputs,
		budgetInput: budgetInput,
		sellInput:   sellInput,
		keys:        newKeyMap(),
		modalKeys:   modalKeyMap{keyMap: newKeyMap()},
	}
}

func (m Model) Init() tea.Cmd {
	return refreshCmd(m.gw, false)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		return m.handleDataLoaded(msg)
	case mutationDoneMsg:
		return m.handleMutationDone(msg)
	case budgetSavedMsg:
		return m.handleBudgetSaved(msg)
	case noticeExpiredMsg:
		return m.dismissNotice(msg.id), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if m.pal != nil {
			return m.updatePalette(msg)
		}
		switch m.form {
		case formAddPhone:
			return m.updateAddForm(msg)
		case formBudget:
			return m.updateBudgetForm(msg)
		case formSellPrice:
			return m.updateSellForm(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (m Model) handleDataLoaded(msg dataLoadedMsg) (tea.Model, tea.Cmd) {
	// Only the refetch that completes a mutating workflow releases the busy
	// guard. A manual refresh landing mid-mutation must not reopen it.
	if msg.afterMutation {
		m.busy = false
	}
	if msg.err != nil {
		log.Printf("refresh failed: %v", msg.err)
		// Stale data stays on screen; the mutation that triggered this
		// refresh (if any) is not rolled back.
		return m.pushNotice(noticeError, "Failed to load data")
	}
	m.phones = msg.phones
	m.budget = msg.budget
	m.stats = msg.stats
	m.ready = true
	m.ensureCursorInWindow()
	if m.status != "" {
		m.status = ""
	}
	return m, nil
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.busy = false
		log.Printf("mutation failed: %v", msg.err)
		return m.pushNotice(noticeError, msg.failText)
	}
	// busy stays set until the refetch lands.
	next, noticeCmd := m.pushBackendMessages(msg.res.Messages, msg.okText)
	return next, tea.Batch(noticeCmd, refreshCmd(next.gw, true))
}

func (m Model) handleBudgetSaved(msg budgetSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.busy = false
		log.Printf("budget update failed: %v", msg.err)
		return m.pushNotice(noticeError, "Failed to update budget")
	}
	next, noticeCmd := m.pushNotice(noticeSuccess, "Budget updated successfully!")
	return next, tea.Batch(noticeCmd, refreshCmd(next.gw, true))
}

// ---------------------------------------------------------------------------
// Main-view key handling
// ---------------------------------------------------------------------------

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorInWindow()
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visiblePhones())-1 {
			m.cursor++
			m.ensureCursorInWindow()
		}
		return m, nil
	case "a":
		return m.openAddForm(), nil
	case "b":
		return m.openBudgetForm(), nil
	case "s":
		if p, ok := m.selectedPhone(); ok {
			return m.applyAction(p, phone.ActionSell)
		}
		return m, nil
	case "x":
		if p, ok := m.selectedPhone(); ok {
			return m.applyAction(p, phone.ActionScam)
		}
		return m, nil
	case "h":
		if p, ok := m.selectedPhone(); ok {
			return m.applyAction(p, phone.ActionHide)
		}
		return m, nil
	case "r":
		return m, refreshCmd(m.gw, false)
	case "d":
		return m.dismissOldestNotice(), nil
	case ":", "ctrl+p":
		return m.openPalette(), nil
	}
	return m, nil
}

// applyAction routes a card action. Hide is local-only; transitions into
// sold detour through the sell-price modal; everything else goes straight to
// the gateway under the busy guard.
func (m Model) applyAction(p phone.Phone, action phone.Action) (tea.Model, tea.Cmd) {
	if !phone.Allows(p.State, action) {
		return m, nil
	}
	if action == phone.ActionHide {
		m.hidden[p.ID] = struct{}{}
		m.ensureCursorInWindow()
		return m.pushNotice(noticeInfo, fmt.Sprintf("%s %s hidden from view", p.Brand, p.Model))
	}
	if action.NeedsSellPrice() {
		return m.openSellForm(p), nil
	}
	if m.busy {
		return m, nil
	}
	target, _ := action.Target()
	m.busy = true
	return m, changeStateCmd(m.gw, p.ID, api.StateChange{State: target},
		"Phone state updated!", "Failed to update phone state")
}

// ---------------------------------------------------------------------------
// Selection & visibility
// ---------------------------------------------------------------------------

// visiblePhones is the rendered set: every phone whose id is not hidden, in
// snapshot order.
func (m Model) visiblePhones() []phone.Phone {
	out := make([]phone.Phone, 0, len(m.phones))
	for _, p := range m.phones {
		if _, ok := m.hidden[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) selectedPhone() (phone.Phone, bool) {
	visible := m.visiblePhones()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return phone.Phone{}, false
	}
	return visible[m.cursor], true
}

// visibleCards is how many cards fit in the current terminal height.
func (m Model) visibleCards() int {
	if m.height == 0 {
		return 4
	}
	available := (m.height - chromeHeight()) / cardHeight
	if available < 1 {
		return 1
	}
	return available
}

func (m *Model) ensureCursorInWindow() {
	total := len(m.visiblePhones())
	if m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.visibleCards()
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}
