package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"phoneflip/internal/phone"
)

// noticeLevel is a notice severity. The four values match the severities the
// backend uses in its advisory messages.
type noticeLevel string

const (
	noticeSuccess noticeLevel = "success"
	noticeError   noticeLevel = "error"
	noticeWarning noticeLevel = "warning"
	noticeInfo    noticeLevel = "info"
)

// parseLevel normalizes a backend-supplied severity string. Anything
// unrecognized is shown as info rather than dropped.
func parseLevel(s string) noticeLevel {
	switch noticeLevel(s) {
	case noticeSuccess, noticeError, noticeWarning, noticeInfo:
		return noticeLevel(s)
	}
	return noticeInfo
}

// notice is one transient user-facing message. Notices stack, dismiss
// manually (oldest first) and auto-dismiss after the configured TTL.
type notice struct {
	id    uuid.UUID
	text  string
	level noticeLevel
}

// pushNotice appends a notice and returns the timer command that will
// auto-dismiss it.
func (m Model) pushNotice(level noticeLevel, text string) (Model, tea.Cmd) {
	n := notice{id: uuid.New(), text: text, level: level}
	m.notices = append(m.notices, n)
	return m, expireNoticeCmd(n.id, m.noticeTTL)
}

// pushBackendMessages shows each advisory message with its backend-supplied
// severity. When the backend attached none, fallback is shown as a success
// notice instead.
func (m Model) pushBackendMessages(msgs []phone.Message, fallback string) (Model, tea.Cmd) {
	if len(msgs) == 0 {
		return m.pushNotice(noticeSuccess, fallback)
	}
	var cmds []tea.Cmd
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.pushNotice(parseLevel(msg.Type), msg.Message)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// dismissNotice removes the notice with the given id, if still present.
func (m Model) dismissNotice(id uuid.UUID) Model {
	kept := make([]notice, 0, len(m.notices))
	for _, n := range m.notices {
		if n.id != id {
			kept = append(kept, n)
		}
	}
	m.notices = kept
	return m
}

// dismissOldestNotice drops the oldest visible notice. Bound to a key so the
// user can clear the stack without waiting out the timers.
func (m Model) dismissOldestNotice() Model {
	if len(m.notices) > 0 {
		m.notices = m.notices[1:]
	}
	return m
}
