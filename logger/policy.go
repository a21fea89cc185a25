package logger

// OverflowPolicy defines how to handle a full worker queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming message when the queue is full (default)
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued message to make room
	DropOldest
	// Block waits for space up to the configured timeout, then drops
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}
