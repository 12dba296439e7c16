package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phoneflip/internal/phone"
)

// Command is one palette entry. Enabled gates availability against the
// current model (with a reason shown when disabled); Execute runs it.
type Command struct {
	ID          string
	Label       string
	Description string
	Enabled     func(m Model) (bool, string)
	Execute     func(m Model) (tea.Model, tea.Cmd)
}

func commandAlwaysEnabled(Model) (bool, string) { return true, "" }

// selectionEnabled gates commands that act on the phone under the cursor.
func selectionEnabled(action phone.Action) func(Model) (bool, string) {
	return func(m Model) (bool, string) {
		p, ok := m.selectedPhone()
		if !ok {
			return false, "No phone selected."
		}
		if !phone.Allows(p.State, action) {
			return false, "Not available for a " + string(p.State) + " phone."
		}
		return true, ""
	}
}

func commandRegistry() []Command {
	return []Command{
		{
			ID:          "phone:add",
			Label:       "Add Phone",
			Description: "Record a newly bought phone",
			Enabled:     commandAlwaysEnabled,
			Execute:     func(m Model) (tea.Model, tea.Cmd) { return m.openAddForm(), nil },
		},
		{
			ID:          "budget:set",
			Label:       "Set Budget",
			Description: "Replace the budget total",
			Enabled:     commandAlwaysEnabled,
			Execute:     func(m Model) (tea.Model, tea.Cmd) { return m.openBudgetForm(), nil },
		},
		{
			ID:          "phone:sold",
			Label:       "Mark Sold",
			Description: "Record the selected phone as sold",
			Enabled:     selectionEnabled(phone.ActionSell),
			Execute: func(m Model) (tea.Model, tea.Cmd) {
				p, _ := m.selectedPhone()
				return m.applyAction(p, phone.ActionSell)
			},
		},
		{
			ID:          "phone:scammed",
			Label:       "Mark Scammed",
			Description: "Record the selected phone as a scam",
			Enabled:     selectionEnabled(phone.ActionScam),
			Execute: func(m Model) (tea.Model, tea.Cmd) {
				p, _ := m.selectedPhone()
				return m.applyAction(p, phone.ActionScam)
			},
		},
		{
			ID:          "phone:hide",
			Label:       "Hide Phone",
			Description: "Hide the selected phone from view (doesn't delete)",
			Enabled:     selectionEnabled(phone.ActionHide),
			Execute: func(m Model) (tea.Model, tea.Cmd) {
				p, _ := m.selectedPhone()
				return m.applyAction(p, phone.ActionHide)
			},
		},
		{
			ID:          "data:refresh",
			Label:       "Refresh",
			Description: "Refetch phones, budget and stats",
			Enabled:     commandAlwaysEnabled,
			Execute:     func(m Model) (tea.Model, tea.Cmd) { return m, refreshCmd(m.gw, false) },
		},
		{
			ID:          "app:quit",
			Label:       "Quit",
			Description: "Exit phoneflip",
			Enabled:     commandAlwaysEnabled,
			Execute:     func(m Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
		},
	}
}

// commandMatch is a ranked registry entry for the current query.
type commandMatch struct {
	cmd            Command
	score          int
	enabled        bool
	disabledReason string
}

// rankCommands orders the registry for a query: exact prefix first, then
// substring, then closest by levenshtein distance. An empty query keeps
// registry order.
func rankCommands(query string, cmds []Command, m Model) []commandMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]commandMatch, 0, len(cmds))
	for _, c := range cmds {
		enabled, reason := c.Enabled(m)
		label := strings.ToLower(c.Label)
		score := levenshtein.ComputeDistance(q, label)
		switch {
		case q == "":
			score = 0
		case strings.HasPrefix(label, q):
			score = -2
		case strings.Contains(label, q):
			score = -1
		}
		matches = append(matches, commandMatch{cmd: c, score: score, enabled: enabled, disabledReason: reason})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score < matches[j].score })
	return matches
}

// palette is the transient command-palette overlay state.
type palette struct {
	input   textinput.Model
	matches []commandMatch
	cursor  int
}

func (m Model) openPalette() Model {
	in := textinput.New()
	in.Placeholder = "Type a command"
	in.CharLimit = 60
	in.Width = 32
	in.Focus()
	m.pal = &palette{
		input:   in,
		matches: rankCommands("", commandRegistry(), m),
	}
	return m
}

func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pal := m.pal
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.pal = nil
		return m, nil
	case "up", "ctrl+p":
		if pal.cursor > 0 {
			pal.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if pal.cursor < len(pal.matches)-1 {
			pal.cursor++
		}
		return m, nil
	case "enter":
		if pal.cursor >= len(pal.matches) {
			return m, nil
		}
		match := pal.matches[pal.cursor]
		if !match.enabled {
			m.pal = nil
			return m.pushNotice(noticeWarning, match.disabledReason)
		}
		m.pal = nil
		return match.cmd.Execute(m)
	}

	var cmd tea.Cmd
	pal.input, cmd = pal.input.Update(msg)
	pal.matches = rankCommands(pal.input.Value(), commandRegistry(), m)
	pal.cursor = 0
	return m, cmd
}
