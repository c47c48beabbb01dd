package wavemenu

// FrameScheduler runs a callback once before the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a FrameScheduler driven by the game loop: the host calls
// Tick once per frame. Callbacks requested while a tick is running are
// deferred to the next tick, so a callback that reschedules itself fires
// exactly once per frame. The zero value is ready to use.
type FrameQueue struct {
	pending []func()
	running []func()
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Tick runs the callbacks that were pending when it was called, in request
// order, and returns how many ran.
func (q *FrameQueue) Tick() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, q.running[:0]
	for i, fn := range q.running {
		fn()
		q.running[i] = nil
	}
	n := len(q.running)
	q.running = q.running[:0]
	return n
}

// Pending returns the number of callbacks waiting for the next Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
