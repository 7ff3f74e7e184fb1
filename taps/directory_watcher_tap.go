package taps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rjeczalik/notify"
	"github.com/xitonix/rotn/logging"
	"github.com/xitonix/rotn/obfuscate"
	"github.com/xitonix/rotn/taps/filesystem"
)

// DirectoryWatcherTap is a tap with the functionality of monitoring the local
// filesystem using OS level notifications and obfuscating the content into the
// target directory.
//
// Unlike FilesystemTap, this tap does not poll the source directory. Incoming
// notifications are queued until the file stops changing, so that partially
// written files never get picked up.
type DirectoryWatcherTap struct {
	requests  obfuscate.RequestChannel
	encryptor obfuscate.Encryptor
	progress  chan *Result
	errors    chan error
	notifyErr bool
	report    bool
	delete    bool
	logger    logging.Logger

	source, target string
	wg             *sync.WaitGroup
	done           chan obfuscate.None
	fsEvents       chan notify.EventInfo
	queue          *filesystem.Queue
	checkInterval  time.Duration

	openOnce  sync.Once
	closeOnce sync.Once

	//to prevent multiple go routines to run Open and Close at the same time
	mux    sync.Mutex
	isOpen bool
}

// NewDirectoryWatcherTap creates a new instance of directory watcher tap.
//
// If you have enabled error notification by setting 'notifyErrors' to true, you need to make sure
// that you subscribe to the "Errors" channel to read off the notification pipe, otherwise you will
// get blocked on the full channel. The same applies to 'reportProgress' and the "Progress" channel.
//
// "settlement" is the period of inactivity after which a changed file is considered
// fully written and ready to be processed.
//
// If you set "deleteCompleted" to true, the input files will get deleted, only if the
// obfuscation operation has been finished successfully.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist.
func NewDirectoryWatcherTap(source, target string,
	settlement time.Duration,
	encryptor obfuscate.Encryptor,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool,
	logger logging.Logger) (*DirectoryWatcherTap, error) {
	src, err := createDirIfNotExist(source)
	if err != nil {
		return nil, err
	}

	tg, err := createDirIfNotExist(target)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.Nop{}
	}

	return &DirectoryWatcherTap{
		requests:      make(obfuscate.RequestChannel),
		encryptor:     encryptor,
		progress:      make(chan *Result),
		errors:        make(chan error),
		notifyErr:     notifyErrors,
		report:        reportProgress,
		delete:        deleteCompleted,
		logger:        logger,
		source:        src,
		target:        tg,
		wg:            &sync.WaitGroup{},
		done:          make(chan obfuscate.None),
		queue:         filesystem.NewQueue(settlement),
		checkInterval: settlement,
		// Make the channel buffered to ensure no event is dropped. Notify will drop
		// an event if the receiver is not able to keep up the sending pace.
		fsEvents: make(chan notify.EventInfo, 1),
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications.
//
// In order to receive the errors on the channel, you need to turn error notifications On by
// setting the "notifyErrors" parameter of NewDirectoryWatcherTap to true.
func (d *DirectoryWatcherTap) Errors() <-chan error {
	return d.errors
}

// Progress returns a read-only channel on which you will receive the progress report.
//
// In order to receive progress report on the channel, you need to turn it On by setting
// the "reportProgress" parameter of NewDirectoryWatcherTap to true.
func (d *DirectoryWatcherTap) Progress() <-chan *Result {
	return d.progress
}

// Requests returns the channel over which the tap delivers its work units
func (d *DirectoryWatcherTap) Requests() obfuscate.RequestChannel {
	return d.requests
}

// IsOpen returns true if the tap is open
func (d *DirectoryWatcherTap) IsOpen() bool {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.isOpen
}

// Open starts the directory watcher on the source directory.
// You SHOULD NOT call this method explicitly when you use the tap with an Engine object.
// Starting the engine will take care of opening the tap.
func (d *DirectoryWatcherTap) Open() {
	d.mux.Lock()
	defer d.mux.Unlock()
	if d.isOpen {
		return
	}
	d.openOnce.Do(func() {
		d.wg.Add(1)
		go d.startDirectoryWatcher()

		d.isOpen = true

		d.wg.Add(1)
		// Process the files which are currently in the source folder
		go d.processExistingFiles()
	})
}

// Close stops the filesystem watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using the tap
// with an Engine
func (d *DirectoryWatcherTap) Close() {
	d.mux.Lock()
	defer d.mux.Unlock()
	if !d.isOpen {
		return
	}
	d.closeOnce.Do(func() {
		d.isOpen = false
		notify.Stop(d.fsEvents)
		close(d.done)
		d.wg.Wait()
		close(d.requests)
		close(d.errors)
		close(d.progress)
	})
}

func (d *DirectoryWatcherTap) processExistingFiles() {
	defer d.wg.Done()
	err := filepath.Walk(d.source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !d.isOpen {
			return io.EOF
		}
		if !info.IsDir() {
			d.dispatchWorkUnit(path)
		}
		return nil
	})

	if err != nil && err != io.EOF {
		d.reportError(err)
	}
}

func (d *DirectoryWatcherTap) startDirectoryWatcher() {
	defer d.wg.Done()

	if err := notify.Watch(filepath.Join(d.source, "..."), d.fsEvents, notify.Create, notify.Write); err != nil {
		d.reportError(err)
		return
	}

	ticker := time.NewTicker(d.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case ei := <-d.fsEvents:
			path := ei.Path()
			d.logger.Debugf("filesystem event received for %s", path)
			isDir, err := d.queue.AddOrUpdate(path)
			if err != nil {
				d.reportError(fmt.Errorf("os.Stat: %s", err))
				continue
			}
			if isDir {
				d.queue.Remove(path)
			}
		case <-ticker.C:
			for _, path := range d.queue.Ready() {
				d.queue.Remove(path)
				d.dispatchWorkUnit(path)
			}
		}
	}
}

func (d *DirectoryWatcherTap) dispatchWorkUnit(path string) {
	input, inputFullPath, err := d.openInputFile(path)
	if err != nil {
		d.reportError(fmt.Errorf("failed to open '%s': %s", path, err))
		return
	}

	name := filepath.Base(inputFullPath)
	outName, mode := outputNameFor(name)

	output, outputFullPath, err := d.createOutputFile(outName, inputFullPath)
	if err != nil {
		if closeErr := input.Close(); closeErr != nil {
			d.reportError(fmt.Errorf("failed to close '%s': %s", name, closeErr))
		}
		d.reportError(fmt.Errorf("failed to create '%s': %s", outName, err))
		return
	}

	task := obfuscate.NewTask(name, mode, input, output)
	task.AddMetadata(inputMetadataKey, name)
	task.AddMetadata(outputMetadataKey, outName)
	task.AddMetadata(inputFullMetadataKey, inputFullPath)
	task.AddMetadata(outputFullMetadataKey, outputFullPath)

	d.reportProgress(&Result{
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

	d.requests <- obfuscate.NewWorkUnit(task, d.encryptor, d.whenDone)
}

// whenDone is a callback method which will get called by the engine once the
// processing of a task has been finished
func (d *DirectoryWatcherTap) whenDone(w *obfuscate.WorkUnit) {
	input, output := parseMetadata(w.Task.MetaData)

	err := w.Task.CloseInput()
	if err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %s", input.Name, err))
	}
	err = w.Task.CloseOutputs()
	if err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %s", output.Name, err))
	}

	if d.delete && w.Task.Status() == obfuscate.Completed {
		if err := os.Remove(input.Path); err != nil {
			d.reportError(fmt.Errorf("failed to remove '%s': %s", input.Name, err))
		}
	}

	d.reportProgress(&Result{
		Status: w.Task.Status(),
		Error:  w.Error,
		Input:  input,
		Output: output,
	})
}

func (d *DirectoryWatcherTap) openInputFile(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, path, err
	}

	input, err := os.Open(abs)
	return input, abs, err
}

func (d *DirectoryWatcherTap) createOutputFile(name, inputFullPath string) (*os.File, string, error) {
	subDir := strings.Replace(filepath.Dir(inputFullPath), d.source, "", 1)
	targetDir := filepath.Join(d.target, subDir)
	abs, err := createDirIfNotExist(targetDir)
	if err != nil {
		return nil, name, err
	}
	abs = filepath.Join(abs, name)
	output, err := os.Create(abs)
	return output, abs, err
}

func (d *DirectoryWatcherTap) reportProgress(r *Result) {
	if d.isOpen && d.report {
		d.progress <- r
	}
}

func (d *DirectoryWatcherTap) reportError(err error) {
	d.logger.Errorln(err)
	if d.isOpen && d.notifyErr {
		d.errors <- err
	}
}
