package entity

// NavigationDecision is the guard's verdict on a navigation attempt.
type NavigationDecision string

const (
	// NavigationAllow lets the engine load the target.
	NavigationAllow NavigationDecision = "allow"

	// NavigationReject means handled: the engine must not navigate.
	NavigationReject NavigationDecision = "reject"
)

// Allowed returns true for NavigationAllow.
func (d NavigationDecision) Allowed() bool {
	return d == NavigationAllow
}
