package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"phoneflip/internal/money"
	"phoneflip/internal/phone"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	notesStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)

	profitStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	lossStyle   = lipgloss.NewStyle().Foreground(colorError)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	emptyStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// Approximate layout constants for card windowing.
const cardHeight = 8

func chromeHeight() int {
	// header + gap + summary box + gap + section header + status + footer
	return 12
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if !m.ready {
		return statusStyle.Render(m.status)
	}

	header := m.renderHeader()
	summary := m.renderSection("Overview", m.renderSummary())
	cards := m.renderSection("Phones", m.renderCards())
	noticeBlock := m.renderNotices()
	statusLine := m.renderStatus()
	footer := m.renderFooter(m.footerBindings())

	body := header + "\n\n" + summary + "\n" + cards
	if noticeBlock != "" {
		body += "\n" + noticeBlock
	}

	if m.pal != nil {
		return m.composeModal(body, statusLine, footer, m.renderPalette())
	}
	if m.form != formNone {
		return m.composeModal(body, statusLine, footer, m.renderForm())
	}
	return m.placeWithFooter(body, statusLine, footer)
}

func (m Model) renderHeader() string {
	name := headerAppStyle.Render(appName)
	line := name + "  " + statusStyle.Render("phone trading budget tracker")
	if m.width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(m.width).Render(line)
}

// ---------------------------------------------------------------------------
// Summary: budget + stats
// ---------------------------------------------------------------------------

func (m Model) renderSummary() string {
	budgetAmount := m.fmtr.Format(m.budget.TotalMoney)
	budgetField := profitStyle.Render(budgetAmount)
	if m.budget.TotalMoney < 0 {
		budgetField = lossStyle.Render(budgetAmount)
	}

	profitAmount := m.fmtr.Format(m.stats.TotalProfit)
	profitField := profitStyle.Render(profitAmount)
	if m.stats.TotalProfit < 0 {
		profitField = lossStyle.Render(profitAmount)
	}

	line1 := labelStyle.Render("Budget ") + budgetField +
		labelStyle.Render("   Phones ") + fmt.Sprintf("%d", m.stats.TotalBought) +
		labelStyle.Render("   Sold ") + fmt.Sprintf("%d", m.stats.TotalSold) +
		labelStyle.Render("   Scammed ") + fmt.Sprintf("%d", m.stats.TotalScammed)
	line2 := labelStyle.Render("Profit ") + profitField +
		labelStyle.Render("   Lost ") + lossStyle.Render(m.fmtr.Format(m.stats.TotalLost)) +
		labelStyle.Render("   Invested ") + m.fmtr.Format(m.stats.TotalInvested) +
		labelStyle.Render("   Revenue ") + m.fmtr.Format(m.stats.TotalRevenue)

	return line1 + "\n" + line2
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

func (m Model) renderCards() string {
	visible := m.visiblePhones()
	if len(visible) == 0 {
		return emptyStyle.Render("No phones to show. Press a to add your first phone.")
	}

	count := m.visibleCards()
	end := m.topIndex + count
	if end > len(visible) {
		end = len(visible)
	}

	var cards []string
	for i := m.topIndex; i < end; i++ {
		cards = append(cards, renderCard(visible[i], i == m.cursor, m.cardWidth(), m.fmtr))
	}
	if len(visible) > count {
		cards = append(cards, scrollStyle.Render(
			fmt.Sprintf("── showing %d-%d of %d ──", m.topIndex+1, end, len(visible))))
	}
	return strings.Join(cards, "\n")
}

// renderCard builds one phone card. Rows for absent values are omitted: no
// sell row without a sell price, no profit row without a profit, no notes
// block without notes.
func renderCard(p phone.Phone, selected bool, width int, fmtr money.Formatter) string {
	badge := lipgloss.NewStyle().
		Foreground(colorBase).
		Background(badgeColor(string(p.State))).
		Padding(0, 1).
		Render(money.Capitalize(string(p.State)))

	title := titleStyle.Render(fmt.Sprintf("%s %s", p.Brand, p.Model))
	lines := []string{title + "  " + badge}

	lines = append(lines, labelStyle.Render("Buy Price:  ")+fmtr.Format(p.BuyPrice))
	if p.SellPrice != nil {
		lines = append(lines, labelStyle.Render("Sell Price: ")+fmtr.Format(*p.SellPrice))
	}
	if p.Profit != nil {
		field := profitStyle.Render(fmtr.FormatPtr(p.Profit))
		if *p.Profit < 0 {
			field = lossStyle.Render(fmtr.FormatPtr(p.Profit))
		}
		lines = append(lines, labelStyle.Render("Profit:     ")+field)
	}
	if p.Notes != "" {
		lines = append(lines, notesStyle.Render(truncate(p.Notes, width-4)))
	}
	lines = append(lines, renderCardActions(p.State))

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderCardActions shows the key hints for the actions the state machine
// offers on this card.
func renderCardActions(s phone.State) string {
	keyFor := map[phone.Action]string{
		phone.ActionSell: "s",
		phone.ActionScam: "x",
		phone.ActionHide: "h",
	}
	var parts []string
	for _, action := range phone.Actions(s) {
		parts = append(parts, helpKeyStyle.Render("["+keyFor[action]+"]")+" "+phone.Label(s, action))
	}
	return strings.Join(parts, "  ")
}

// ---------------------------------------------------------------------------
// Notices
// ---------------------------------------------------------------------------

func (m Model) renderNotices() string {
	if len(m.notices) == 0 {
		return ""
	}
	var lines []string
	for _, n := range m.notices {
		marker := lipgloss.NewStyle().Foreground(severityColor(n.level)).Render("▪")
		lines = append(lines, " "+marker+" "+n.text)
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Forms & palette
// ---------------------------------------------------------------------------

func (m Model) renderForm() string {
	switch m.form {
	case formAddPhone:
		lines := []string{titleStyle.Render("Add Phone"), ""}
		labels := []string{"Brand", "Model", "Buy price", "Notes"}
		for i, in := range m.addInputs {
			lines = append(lines, labelStyle.Render(labels[i])+"\n"+in.View())
		}
		lines = append(lines, "", statusStyle.Render("enter save · esc cancel"))
		return strings.Join(lines, "\n")
	case formBudget:
		return strings.Join([]string{
			titleStyle.Render("Set Budget"), "",
			m.budgetInput.View(), "",
			statusStyle.Render("enter save · esc cancel"),
		}, "\n")
	case formSellPrice:
		prompt := fmt.Sprintf("Enter the selling price for %s %s:", m.sellTarget.Brand, m.sellTarget.Model)
		return strings.Join([]string{
			titleStyle.Render("Mark Sold"), "",
			labelStyle.Render(prompt),
			m.sellInput.View(), "",
			statusStyle.Render("enter confirm · esc cancel"),
		}, "\n")
	}
	return ""
}

func (m Model) renderPalette() string {
	pal := m.pal
	lines := []string{titleStyle.Render("Commands"), pal.input.View(), ""}
	for i, match := range pal.matches {
		prefix := "  "
		if i == pal.cursor {
			prefix = helpKeyStyle.Render("> ")
		}
		label := match.cmd.Label
		if !match.enabled {
			label = emptyStyle.Render(label)
		}
		lines = append(lines, prefix+label+"  "+statusStyle.Render(match.cmd.Description))
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m Model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sep := lipgloss.NewStyle().Foreground(colorSurface2).Render(strings.Repeat("─", contentWidth))
	section := listBoxStyle.Width(m.sectionWidth()).Render(header + "\n" + sep + "\n" + content)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m Model) footerBindings() []key.Binding {
	if m.form != formNone || m.pal != nil {
		return m.modalKeys.ShortHelp()
	}
	return m.keys.ShortHelp()
}

func (m Model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m Model) renderStatus() string {
	text := m.status
	if text == "" {
		if m.busy {
			text = "Working..."
		} else {
			text = "Ready."
		}
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if m.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(m.width).Render(flat)
}

func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines prevent ghosting from previous frames.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (m Model) composeModal(body, statusLine, footer, content string) string {
	baseView := m.placeWithFooter(body, statusLine, footer)
	modal := modalStyle.Render(content)
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + modal
	}
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, m.width, targetHeight)
}

// ---------------------------------------------------------------------------
// Widths
// ---------------------------------------------------------------------------

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m Model) sectionContentWidth() int {
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 1 {
		contentWidth = 1
	}
	return contentWidth
}

func (m Model) cardWidth() int {
	w := m.sectionContentWidth()
	if w < 24 {
		return 24
	}
	return w
}
