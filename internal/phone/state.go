package phone

// Action is a user-facing operation offered on a phone card. State actions
// map to backend transitions; ActionHide is purely local and never reaches
// the gateway.
type Action string

const (
	ActionSell Action = "sold"
	ActionScam Action = "scammed"
	ActionHide Action = "hide"
)

// Target returns the state an action transitions into. ActionHide has no
// target state.
func (a Action) Target() (State, bool) {
	switch a {
	case ActionSell:
		return StateSold, true
	case ActionScam:
		return StateScammed, true
	}
	return "", false
}

// NeedsSellPrice reports whether the action requires the user to supply a
// positive sell price before the transition may be requested.
func (a Action) NeedsSellPrice() bool {
	return a == ActionSell
}

// Actions derives the state-transition actions offered for a record in the
// given state. ActionHide is appended unconditionally. The backend remains
// the authority on transition legality; this table only controls which
// buttons the UI offers.
//
//	bought  -> {sold, scammed}
//	sold    -> {scammed}
//	scammed -> {sold}
func Actions(s State) []Action {
	var out []Action
	switch s {
	case StateBought:
		out = []Action{ActionSell, ActionScam}
	case StateSold:
		out = []Action{ActionScam}
	case StateScammed:
		out = []Action{ActionSell}
	}
	return append(out, ActionHide)
}

// Allows reports whether the action is offered for a record in state s.
func Allows(s State, a Action) bool {
	for _, offered := range Actions(s) {
		if offered == a {
			return true
		}
	}
	return false
}

// Label returns the button text for an action given the record's current
// state. A scammed phone that turns out to have sold after all gets its own
// wording.
func Label(s State, a Action) string {
	switch a {
	case ActionSell:
		if s == StateScammed {
			return "Actually Sold"
		}
		return "Mark Sold"
	case ActionScam:
		if s == StateSold {
			return "Mark as Scam"
		}
		return "Mark Scammed"
	case ActionHide:
		return "Hide"
	}
	return string(a)
}
