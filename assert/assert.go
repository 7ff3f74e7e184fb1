// Package assert includes some helper methods used for testing
package assert

import (
	"bytes"
	"testing"
)

// Errors checks the validity of the expected error and returns false if the assertion failed
func Errors(t *testing.T, expectError bool, err error, fields Fields) bool {
	t.Helper()

	if expectError && err == nil {
		t.Errorf("Expected an error, but received 'nil' (%s)", fields.String())
		return false
	}

	if !expectError && err != nil {
		t.Errorf("No error was expected, but received '%v' (%s)", err, fields.String())
		return false
	}

	return true
}

// BytesEqual checks the equality of the two byte slices and returns false if the assertion failed
func BytesEqual(t *testing.T, expected, actual []byte, fields Fields) bool {
	t.Helper()

	if !bytes.Equal(expected, actual) {
		t.Errorf("Expected %v, but received %v (%s)", expected, actual, fields.String())
		return false
	}
	return true
}
