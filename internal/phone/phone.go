// Package phone holds the domain types shared by the gateway and the TUI:
// phone records, the budget and stats aggregates, and the state machine
// governing which transitions each record may take.
package phone

// State is the lifecycle state of a tracked phone.
type State string

const (
	StateBought  State = "bought"
	StateSold    State = "sold"
	StateScammed State = "scammed"
)

// Valid reports whether s is one of the three known states.
func (s State) Valid() bool {
	switch s {
	case StateBought, StateSold, StateScammed:
		return true
	}
	return false
}

// Phone is one tracked device as the backend serializes it. Records are
// treated as immutable value objects: the TUI replaces its whole slice on
// every refetch and never patches fields locally.
type Phone struct {
	ID        int64    `json:"id"`
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	BuyPrice  float64  `json:"buy_price"`
	SellPrice *float64 `json:"sell_price"`
	Profit    *float64 `json:"profit"`
	State     State    `json:"state"`
	Notes     string   `json:"notes"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// Budget is the single server-owned aggregate of available funds.
type Budget struct {
	TotalMoney float64 `json:"total_money"`
	UpdatedAt  string  `json:"updated_at"`
}

// Stats are derived aggregates recomputed by the backend after every
// mutation. The TUI only displays them.
type Stats struct {
	TotalBought   int     `json:"total_bought"`
	TotalSold     int     `json:"total_sold"`
	TotalScammed  int     `json:"total_scammed"`
	TotalInvested float64 `json:"total_invested"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProfit   float64 `json:"total_profit"`
	TotalLost     float64 `json:"total_lost"`
}

// Message is an advisory notice the backend may attach to a successful
// mutation (deal evaluations, budget warnings). Type carries the severity
// the UI should render it with.
type Message struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
