package obfuscate

import (
	"context"
	"sync"
)

// Engine serves the encoding and decoding requests flowing from the connected Tap.
// Every work unit is processed by the encryptor it carries, so a single engine can
// serve tasks keyed with different configurations.
type Engine struct {
	stream  *stream
	wg      *sync.WaitGroup
	cancel  context.CancelFunc
	workers uint16

	startOnce sync.Once
	stopOnce  sync.Once

	//to prevent multiple go routines to run Start and Stop at the same time
	mux       sync.Mutex
	isRunning bool
}

// NewEngine creates a new engine connected to the provided tap.
// "bufferSize" specifies the capacity of the internal work list as well as the
// number of workers serving it.
func NewEngine(bufferSize uint16, tap Tap) *Engine {
	return &Engine{
		stream:  newStream(bufferSize, tap),
		wg:      &sync.WaitGroup{},
		workers: bufferSize,
	}
}

// Start starts the engine to serve the requests coming through over the tap's
// request channel. Once you are finished with the engine, you need to call the
// Stop function. It's safe to call this method on a running engine
func (e *Engine) Start() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.isRunning {
		return
	}

	e.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		e.cancel = cancel

		for i := 0; uint16(i) < e.workers; i++ {
			e.wg.Add(1)
			go e.monitorStream(ctx)
		}
		e.stream.open()
		e.isRunning = true
	})
}

// Stop stops the engine and releases the resources.
// It's safe to call this function on a stopped engine
func (e *Engine) Stop() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.isRunning {
		return
	}
	e.stopOnce.Do(func() {
		if e.cancel != nil {
			e.isRunning = false
			e.stream.shutdown()
			e.cancel()
			e.wg.Wait()
		}
	})
}

// IsON returns true if the engine is running
func (e *Engine) IsON() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.isRunning
}

func (e *Engine) monitorStream(ctx context.Context) {
	defer e.wg.Done()
	for {
		select {
		case wu, more := <-e.stream.workList:
			if !more {
				return
			}
			processWorkUnit(ctx, wu)
			wu.callBack()
		case <-ctx.Done():
			return
		}
	}
}

func processWorkUnit(ctx context.Context, wu *WorkUnit) {
	task := wu.Task
	task.markAsInProgress()
	var status Status
	if task.mode == Encode {
		encoder := NewEncoder(wu.encryptor, task.input, task.outputs...)
		status, wu.Error = encoder.EncodeContext(ctx)
	} else {
		decoder := NewDecoder(wu.encryptor, task.input, task.outputs...)
		status, wu.Error = decoder.DecodeContext(ctx)
	}
	task.markAsComplete(status)
}
