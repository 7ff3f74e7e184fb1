package taps

import (
	"os"
	"path/filepath"

	"github.com/xitonix/rotn/obfuscate"
)

const (
	// files carrying this extension get decoded; everything else gets encoded
	encodedFileExtension = ".rotn"

	inputMetadataKey      = "input"
	outputMetadataKey     = "output"
	inputFullMetadataKey  = "input_full_path"
	outputFullMetadataKey = "output_full_path"
)

// File file
type File struct {
	// Name file name
	Name string
	// Path file full path
	Path string
}

// Result represents the progress details of a task
type Result struct {
	// Status the status of the operation
	Status obfuscate.Status

	// Error the error details of a failed task
	Error error

	Input, Output File
}

func createDirIfNotExist(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}
	fi, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return abs, os.MkdirAll(abs, os.ModePerm)
	}
	if err != nil {
		return abs, err
	}
	if !fi.IsDir() {
		return abs, ErrInvalidDirectory
	}
	return abs, nil
}

func parseMetadata(metadata map[string]interface{}) (File, File) {
	return File{
			Name: metadata[inputMetadataKey].(string),
			Path: metadata[inputFullMetadataKey].(string),
		},
		File{
			Name: metadata[outputMetadataKey].(string),
			Path: metadata[outputFullMetadataKey].(string),
		}
}

// outputNameFor maps an input file name to the name of its processed
// counterpart and reports whether the file needs to be decoded
func outputNameFor(name string) (string, obfuscate.Operation) {
	if filepath.Ext(name) == encodedFileExtension {
		return name[:len(name)-len(encodedFileExtension)], obfuscate.Decode
	}
	return name + encodedFileExtension, obfuscate.Encode
}
