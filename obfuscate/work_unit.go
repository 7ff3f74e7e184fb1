package obfuscate

// CallbackFunc is a callback function which will get called by the engine once
// the processing of a work unit has been finished
type CallbackFunc func(*WorkUnit)

// WorkUnit binds a Task to the encryptor which must process it
type WorkUnit struct {
	// Task the task to process
	Task *Task
	// Error the error details of a failed work unit
	Error error

	encryptor Encryptor
	callback  CallbackFunc
}

// NewWorkUnit creates a new work unit
func NewWorkUnit(t *Task, encryptor Encryptor, c CallbackFunc) *WorkUnit {
	return &WorkUnit{
		Task:      t,
		encryptor: encryptor,
		callback:  c,
	}
}

func (w *WorkUnit) callBack() {
	if w.callback != nil {
		w.callback(w)
	}
}
