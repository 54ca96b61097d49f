package tracing

// A Writer persists a stream of Tasks. Init prepares the sink (creating a
// file or database, registering its own flush-on-exit hook), Write buffers
// or immediately persists a task, and Flush forces out anything buffered.
type Writer interface {
	Init()
	Write(task Task)
	Flush()
}
