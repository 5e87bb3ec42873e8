package loop

// Commands buffers work that must not run while systems are executing,
// such as drawing debug panels or restarting a session. Deferred functions
// run in queue order when the frame is flushed.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after every system of the frame has executed.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len reports how many functions are queued.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued functions and resets the buffer. Functions deferred
// during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
