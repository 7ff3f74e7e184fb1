package obfuscate

// Status represents the lifecycle state of an encoding/decoding task
type Status int8

const (
	// Queued the task has been accepted and is waiting to be served
	Queued Status = iota
	// Completed the task has been served successfully
	Completed
	// Cancelled the task has been cancelled before it could finish
	Cancelled
	// Failed serving the task has failed
	Failed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Queued:
		return "queued"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}
