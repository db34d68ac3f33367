package dashbar

// DashBarState represents the current state of the dash dialog.
type DashBarState int

const (
	StateHidden DashBarState = iota
	StateOpen                // Accepting input, palette visible
)
