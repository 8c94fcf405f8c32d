package eventloop

// Task is a caller-defined unit of work executed exactly once on its
// assigned loop's goroutine. The queue owns a task from Enqueue until the
// loop dequeues it; the loop drops its reference immediately after Run
// returns, so a task is never read after it executes.
type Task interface {
	Run(loop *EventLoop)
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(loop *EventLoop)

// Run implements Task.
func (f TaskFunc) Run(loop *EventLoop) {
	f(loop)
}
