package lro

// Status is the lifecycle tag a long-running operation reports, either as
// the top-level "status" field (AsyncOperation/Operation-Location bodies)
// or as "properties.provisioningState" (Body/Location bodies).
type Status int

const (
	StatusUnknown Status = iota
	StatusInProgress
	StatusSucceeded
	StatusFailed
	StatusCanceled
	StatusCancelled
	StatusCompleted
)

// ParseStatus maps the literal, case-sensitive ARM status vocabulary onto a
// Status. Any string outside the known set maps to StatusUnknown, including
// the empty string.
func ParseStatus(s string) Status {
	switch s {
	case "Succeeded":
		return StatusSucceeded
	case "Canceled":
		return StatusCanceled
	case "Failed":
		return StatusFailed
	case "InProgress":
		return StatusInProgress
	case "Cancelled":
		return StatusCancelled
	case "Completed":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// String is the inverse of ParseStatus for every status ParseStatus can
// produce from a known string; StatusUnknown has no canonical spelling and
// renders as "Unknown".
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "Succeeded"
	case StatusCanceled:
		return "Canceled"
	case StatusFailed:
		return "Failed"
	case StatusInProgress:
		return "InProgress"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// IsFailed reports whether s represents a failed-terminal verdict. Both
// British and American spellings of "cancelled" count as failure.
func (s Status) IsFailed() bool {
	switch s {
	case StatusFailed, StatusCanceled, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsSucceeded reports whether s represents a succeeded-terminal verdict.
func (s Status) IsSucceeded() bool {
	switch s {
	case StatusSucceeded, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s is a final verdict, i.e. polling should stop.
func (s Status) IsTerminal() bool {
	return s.IsFailed() || s.IsSucceeded()
}

// FinalStateVia is a hint, supplied by operation metadata, instructing a
// handler which URL to use for the final GET after a successful terminal
// verdict.
type FinalStateVia int

const (
	FinalStateAzureAsyncOp FinalStateVia = iota
	FinalStateLocation
	FinalStateOriginalURI
	FinalStateOperationLocation
)
