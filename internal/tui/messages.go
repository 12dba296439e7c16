package tui

import (
	"github.com/google/uuid"

	"phoneflip/internal/api"
	"phoneflip/internal/phone"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// dataLoadedMsg carries the result of a full refresh: phones, budget and
// stats fetched together. A non-nil err means at least one of the three
// reads failed and the previously displayed data stays in place.
// afterMutation marks the refetch that follows a successful mutation; only
// that load may release the busy guard.
type dataLoadedMsg struct {
	phones        []phone.Phone
	budget        phone.Budget
	stats         phone.Stats
	err           error
	afterMutation bool
}

// mutationDoneMsg carries the result of an add-phone or state-change call.
// okText is the fallback success notice when the backend attached no
// advisory messages; failText is the uniform error notice.
type mutationDoneMsg struct {
	res      *api.MutationResult
	err      error
	okText   string
	failText string
}

// budgetSavedMsg signals that a budget update finished. The new totals are
// not carried here; the handler refetches, the only route by which snapshot
// data changes.
type budgetSavedMsg struct {
	err error
}

// noticeExpiredMsg fires when a notice's auto-dismiss timer elapses.
type noticeExpiredMsg struct {
	id uuid.UUID
}
