package entity

import "fmt"

// NameMatchOrder decides which row wins when a name fragment matches several profiles.
type NameMatchOrder string

const (
	// NameMatchFirst takes whatever row the store returns first.
	NameMatchFirst NameMatchOrder = "first"
	// NameMatchOldest takes the earliest created profile.
	NameMatchOldest NameMatchOrder = "oldest"
	// NameMatchNewest takes the most recently created profile.
	NameMatchNewest NameMatchOrder = "newest"
	// NameMatchReject refuses to pick when more than one profile matches.
	NameMatchReject NameMatchOrder = "reject"
)

// ParseNameMatchOrder validates a configured order.
func ParseNameMatchOrder(s string) (NameMatchOrder, error) {
	switch o := NameMatchOrder(s); o {
	case NameMatchFirst, NameMatchOldest, NameMatchNewest, NameMatchReject:
		return o, nil
	default:
		return "", fmt.Errorf("unknown name match order: %q", s)
	}
}
