// Package filesystem provides the settlement queue used by the filesystem taps
// to make sure a file is fully written to disk before it gets processed.
package filesystem

import (
	"os"
	"sync"
	"time"
)

// Queue keeps track of the files reported by the filesystem notifications and
// releases a path only once it has stopped changing for the settlement period.
type Queue struct {
	mux      sync.Mutex
	settle   time.Duration
	monitors map[string]*fileMonitor
}

// NewQueue creates a new settlement queue.
// "settle" is the period of inactivity after which a file is considered stable.
func NewQueue(settle time.Duration) *Queue {
	return &Queue{
		settle:   settle,
		monitors: make(map[string]*fileMonitor),
	}
}

// AddOrUpdate adds the specified path to the queue, or refreshes its timestamp
// if the path is already being monitored. The return value reports whether the
// path points to a directory.
func (q *Queue) AddOrUpdate(path string) (bool, error) {
	q.mux.Lock()
	defer q.mux.Unlock()
	m, ok := q.monitors[path]
	if ok {
		m.update()
		return false, nil
	}
	f, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	q.monitors[path] = newFileMonitor(f, path)
	return f.IsDir(), nil
}

// Remove takes the specified path off the queue.
func (q *Queue) Remove(path string) {
	q.mux.Lock()
	defer q.mux.Unlock()
	delete(q.monitors, path)
}

// Ready returns the paths of the files which have not been modified
// for longer than the settlement period.
func (q *Queue) Ready() []string {
	q.mux.Lock()
	defer q.mux.Unlock()
	var paths []string
	for path, m := range q.monitors {
		if m.isReady(q.settle) {
			paths = append(paths, path)
		}
	}
	return paths
}
