package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgQueueFull         = "Worker queue full, job dropped"
)

// Log fields
const (
	LogFieldJob   = "job"
	LogFieldError = "error"
	LogFieldPanic = "panic"
)

// DefaultJobTimeout bounds a single job when the pool is built without one
const DefaultJobTimeout = 60 // seconds
