package taps

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/xitonix/rotn/obfuscate"
)

func TestOutputNameFor(t *testing.T) {
	testCases := []struct {
		title        string
		input        string
		expectedName string
		expectedMode obfuscate.Operation
	}{
		{
			title:        "plain file",
			input:        "report.txt",
			expectedName: "report.txt.rotn",
			expectedMode: obfuscate.Encode,
		},
		{
			title:        "file without extension",
			input:        "report",
			expectedName: "report.rotn",
			expectedMode: obfuscate.Encode,
		},
		{
			title:        "encoded file",
			input:        "report.txt.rotn",
			expectedName: "report.txt",
			expectedMode: obfuscate.Decode,
		},
		{
			title:        "encoded file without an inner extension",
			input:        "report.rotn",
			expectedName: "report",
			expectedMode: obfuscate.Decode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			name, mode := outputNameFor(tc.input)
			if name != tc.expectedName {
				t.Errorf("expected name %s, but received %s", tc.expectedName, name)
			}
			if mode != tc.expectedMode {
				t.Errorf("expected mode %v, but received %v", tc.expectedMode, mode)
			}
		})
	}
}

func TestCreateDirIfNotExist(t *testing.T) {
	base, err := ioutil.TempDir("", "taps")
	if err != nil {
		t.Fatalf("failed to create the temp directory: %s", err)
	}
	defer os.RemoveAll(base)

	dir := filepath.Join(base, "sub", "dir")
	abs, err := createDirIfNotExist(dir)
	if err != nil {
		t.Errorf("did not expect an error, but received %s", err)
	}
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		t.Errorf("expected %s to be a directory", abs)
	}

	// the second call must be a no-op
	if _, err := createDirIfNotExist(dir); err != nil {
		t.Errorf("did not expect an error, but received %s", err)
	}
}

func TestCreateDirIfNotExistWithFile(t *testing.T) {
	base, err := ioutil.TempDir("", "taps")
	if err != nil {
		t.Fatalf("failed to create the temp directory: %s", err)
	}
	defer os.RemoveAll(base)

	file := filepath.Join(base, "input.txt")
	if err := ioutil.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create the input file: %s", err)
	}

	if _, err := createDirIfNotExist(file); err != ErrInvalidDirectory {
		t.Errorf("expected %s, but received %v", ErrInvalidDirectory, err)
	}
}

func TestParseMetadata(t *testing.T) {
	metadata := map[string]interface{}{
		inputMetadataKey:      "input.txt",
		inputFullMetadataKey:  "/src/input.txt",
		outputMetadataKey:     "input.txt.rotn",
		outputFullMetadataKey: "/target/input.txt.rotn",
	}

	input, output := parseMetadata(metadata)
	if input.Name != "input.txt" || input.Path != "/src/input.txt" {
		t.Errorf("unexpected input file details: %+v", input)
	}
	if output.Name != "input.txt.rotn" || output.Path != "/target/input.txt.rotn" {
		t.Errorf("unexpected output file details: %+v", output)
	}
}
