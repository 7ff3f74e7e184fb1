package taps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/xitonix/rotn/logging"
	"github.com/xitonix/rotn/obfuscate"
)

// FilesystemTap is a tap with the functionality of monitoring the local filesystem
// and obfuscating newly created files into the target directory. Files carrying the
// encoded extension get decoded into the target directory instead.
type FilesystemTap struct {
	requests  obfuscate.RequestChannel
	encryptor obfuscate.Encryptor
	watcher   *watcher.Watcher
	interval  time.Duration
	progress  chan *Result
	errors    chan error
	notifyErr bool
	report    bool
	delete    bool
	logger    logging.Logger

	source, target string
	wg             *sync.WaitGroup

	openOnce  sync.Once
	closeOnce sync.Once

	//to prevent multiple go routines to run Open and Close at the same time
	mux    sync.Mutex
	isOpen bool
}

// NewFilesystemTap creates a new instance of local filesystem tap.
// You can feed this tap to an Engine object to automate your obfuscation tasks.
//
// If you have enabled error notification by setting 'notifyErrors' to true, you need to make sure
// that you subscribe to the "Errors" channel to read off the notification pipe, otherwise you will
// get blocked on the full channel. The same applies to 'reportProgress' and the "Progress" channel.
//
// "pollingInterval" is the frequency of checking the "source" directory for newly created files.
//
// If you set "deleteCompleted" to true, the input files will get deleted, only if the
// obfuscation operation has been finished successfully.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist.
func NewFilesystemTap(source, target string,
	pollingInterval time.Duration,
	encryptor obfuscate.Encryptor,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool,
	logger logging.Logger) (*FilesystemTap, error) {
	src, err := createDirIfNotExist(source)
	if err != nil {
		return nil, err
	}

	tg, err := createDirIfNotExist(target)
	if err != nil {
		return nil, err
	}

	w := watcher.New()
	w.FilterOps(watcher.Create)
	w.IgnoreHiddenFiles(true)

	if err := w.AddRecursive(src); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.Nop{}
	}

	return &FilesystemTap{
		requests:  make(obfuscate.RequestChannel),
		encryptor: encryptor,
		watcher:   w,
		interval:  pollingInterval,
		progress:  make(chan *Result),
		errors:    make(chan error),
		notifyErr: notifyErrors,
		report:    reportProgress,
		delete:    deleteCompleted,
		logger:    logger,
		source:    src,
		target:    tg,
		wg:        &sync.WaitGroup{},
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications.
//
// In order to receive the errors on the channel, you need to turn error notifications On by
// setting the "notifyErrors" parameter of NewFilesystemTap to true.
func (t *FilesystemTap) Errors() <-chan error {
	return t.errors
}

// Progress returns a read-only channel on which you will receive the progress report.
//
// In order to receive progress report on the channel, you need to turn it On by setting
// the "reportProgress" parameter of NewFilesystemTap to true.
func (t *FilesystemTap) Progress() <-chan *Result {
	return t.progress
}

// Requests returns the channel over which the tap delivers its work units
func (t *FilesystemTap) Requests() obfuscate.RequestChannel {
	return t.requests
}

// IsOpen returns true if the tap is open
func (t *FilesystemTap) IsOpen() bool {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.isOpen
}

// Open starts the filesystem monitor on the source directory.
// You SHOULD NOT call this method explicitly when you use the tap with an Engine object.
// Starting the engine will take care of opening the tap.
func (t *FilesystemTap) Open() {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.isOpen {
		return
	}
	t.openOnce.Do(func() {
		t.wg.Add(1)
		go t.monitorEvents()
		go func() {
			if err := t.watcher.Start(t.interval); err != nil {
				t.reportError(err)
			}
		}()
		// make sure the watcher is running before we report the tap as open
		t.watcher.Wait()
		t.isOpen = true
	})
}

// Close stops the filesystem monitor and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using the tap
// with an Engine
func (t *FilesystemTap) Close() {
	t.mux.Lock()
	defer t.mux.Unlock()
	if !t.isOpen {
		return
	}
	t.closeOnce.Do(func() {
		t.isOpen = false
		t.watcher.Close()
		t.wg.Wait()
		close(t.requests)
		close(t.errors)
		close(t.progress)
	})
}

func (t *FilesystemTap) monitorEvents() {
	defer t.wg.Done()
	for {
		select {
		case event := <-t.watcher.Event:
			if event.IsDir() {
				continue
			}
			t.logger.Debugf("filesystem event received for %s", event.Path)
			t.dispatchWorkUnit(event.Path)
		case err := <-t.watcher.Error:
			t.reportError(err)
		case <-t.watcher.Closed:
			return
		}
	}
}

func (t *FilesystemTap) dispatchWorkUnit(path string) {
	input, inputFullPath, err := t.openInputFile(path)
	if err != nil {
		t.reportError(fmt.Errorf("failed to open '%s': %s", path, err))
		return
	}

	name := filepath.Base(inputFullPath)
	outName, mode := outputNameFor(name)

	output, outputFullPath, err := t.createOutputFile(outName, inputFullPath)
	if err != nil {
		if closeErr := input.Close(); closeErr != nil {
			t.reportError(fmt.Errorf("failed to close '%s': %s", name, closeErr))
		}
		t.reportError(fmt.Errorf("failed to create '%s': %s", outName, err))
		return
	}

	task := obfuscate.NewTask(name, mode, input, output)
	task.AddMetadata(inputMetadataKey, name)
	task.AddMetadata(outputMetadataKey, outName)
	task.AddMetadata(inputFullMetadataKey, inputFullPath)
	task.AddMetadata(outputFullMetadataKey, outputFullPath)

	t.reportProgress(&Result{
		Status: task.Status(),
		Input: File{
			Name: name,
			Path: inputFullPath,
		},
		Output: File{
			Name: outName,
			Path: outputFullPath,
		},
	})

	t.requests <- obfuscate.NewWorkUnit(task, t.encryptor, t.whenDone)
}

// whenDone is a callback method which will get called by the engine once the
// processing of a task has been finished
func (t *FilesystemTap) whenDone(w *obfuscate.WorkUnit) {
	input, output := parseMetadata(w.Task.MetaData)

	err := w.Task.CloseInput()
	if err != nil {
		t.reportError(fmt.Errorf("failed to close '%s': %s", input.Name, err))
	}
	err = w.Task.CloseOutputs()
	if err != nil {
		t.reportError(fmt.Errorf("failed to close '%s': %s", output.Name, err))
	}

	if t.delete && w.Task.Status() == obfuscate.Completed {
		if err := os.Remove(input.Path); err != nil {
			t.reportError(fmt.Errorf("failed to remove '%s': %s", input.Name, err))
		}
	}

	t.reportProgress(&Result{
		Status: w.Task.Status(),
		Error:  w.Error,
		Input:  input,
		Output: output,
	})
}

func (t *FilesystemTap) openInputFile(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, path, err
	}

	input, err := os.Open(abs)
	return input, abs, err
}

func (t *FilesystemTap) createOutputFile(name, inputFullPath string) (*os.File, string, error) {
	subDir := strings.Replace(filepath.Dir(inputFullPath), t.source, "", 1)
	targetDir := filepath.Join(t.target, subDir)
	abs, err := createDirIfNotExist(targetDir)
	if err != nil {
		return nil, name, err
	}
	abs = filepath.Join(abs, name)
	output, err := os.Create(abs)
	return output, abs, err
}

func (t *FilesystemTap) reportProgress(r *Result) {
	if t.isOpen && t.report {
		t.progress <- r
	}
}

func (t *FilesystemTap) reportError(err error) {
	t.logger.Errorln(err)
	if t.isOpen && t.notifyErr {
		t.errors <- err
	}
}
