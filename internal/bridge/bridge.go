package bridge

// Sender forwards one raw payload toward the storage server. Delivery is
// fire-and-forget: at-most-once, unordered, no acknowledgment and no retry.
// An error from Send is a non-fatal signal; callers log it and move on.
type Sender interface {
	Send(payload []byte) error
}
