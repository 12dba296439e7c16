package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"phoneflip/internal/api"
	"phoneflip/internal/phone"
)

// Gateway is the slice of the backend client the TUI depends on. *api.Client
// satisfies it; tests substitute a recording fake.
type Gateway interface {
	ListPhones(ctx context.Context) ([]phone.Phone, error)
	GetBudget(ctx context.Context) (phone.Budget, error)
	GetStats(ctx context.Context) (phone.Stats, error)
	AddPhone(ctx context.Context, p api.NewPhone) (*api.MutationResult, error)
	UpdatePhoneState(ctx context.Context, id int64, change api.StateChange) (*api.MutationResult, error)
	UpdateBudget(ctx context.Context, totalMoney float64) (phone.Budget, error)
	DeletePhone(ctx context.Context, id int64) error
}

// refreshCmd fetches phones, budget and stats concurrently. All three must
// succeed before the snapshot replaces the displayed data; any failure keeps
// the stale snapshot in place. afterMutation tags the refetch that completes
// a mutating workflow so the handler knows it may release the busy guard.
func refreshCmd(gw Gateway, afterMutation bool) tea.Cmd {
	return func() tea.Msg {
		var (
			phones []phone.Phone
			budget phone.Budget
			stats  phone.Stats
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			phones, err = gw.ListPhones(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			budget, err = gw.GetBudget(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			stats, err = gw.GetStats(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return dataLoadedMsg{err: err, afterMutation: afterMutation}
		}
		return dataLoadedMsg{phones: phones, budget: budget, stats: stats, afterMutation: afterMutation}
	}
}

func addPhoneCmd(gw Gateway, p api.NewPhone, okText, failText string) tea.Cmd {
	return func() tea.Msg {
		res, err := gw.AddPhone(context.Background(), p)
		return mutationDoneMsg{res: res, err: err, okText: okText, failText: failText}
	}
}

func changeStateCmd(gw Gateway, id int64, change api.StateChange, okText, failText string) tea.Cmd {
	return func() tea.Msg {
		res, err := gw.UpdatePhoneState(context.Background(), id, change)
		return mutationDoneMsg{res: res, err: err, okText: okText, failText: failText}
	}
}

func saveBudgetCmd(gw Gateway, totalMoney float64) tea.Cmd {
	return func() tea.Msg {
		_, err := gw.UpdateBudget(context.Background(), totalMoney)
		return budgetSavedMsg{err: err}
	}
}

func expireNoticeCmd(id uuid.UUID, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
