package obfuscate

import (
	"context"
	"testing"

	"github.com/mattetti/filebuffer"
	"github.com/xitonix/rotn/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		title          string
		expectedLength int64
		input          string
		keyID          string
		secretKey      string
	}{
		{
			title:          "empty_input",
			expectedLength: headerLength,
			input:          "",
			keyID:          "13",
		},
		{
			title:          "whitespace_input",
			expectedLength: headerLength + 1,
			input:          " ",
			keyID:          "13",
		},
		{
			title:          "non_empty_input",
			expectedLength: headerLength + 2,
			input:          "Go",
			keyID:          "13",
		},
		{
			title:          "secret_key_input",
			expectedLength: headerLength + 8,
			input:          "MySecret",
			keyID:          "2",
			secretKey:      "ABC",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			in := filebuffer.New([]byte(tc.input))
			out := filebuffer.New(nil)
			enc := customise(t, tc.keyID, tc.secretKey)

			encoder := NewEncoder(enc, in, out)
			status, err := encoder.Encode()
			if err != nil {
				t.Errorf("failed to encode: %v", err)
				return
			}

			if status != Completed {
				t.Errorf("expected encoding status to be '%s', actual '%s'", Completed, status)
			}

			if tc.expectedLength != out.Index {
				t.Errorf("encoded output length expected to be %d, but it was %d", tc.expectedLength, out.Index)
			}
		})
	}
}

func TestEncodeCancelledContext(t *testing.T) {
	in := filebuffer.New([]byte("Hello"))
	out := filebuffer.New(nil)
	enc := customise(t, "13", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	encoder := NewEncoder(enc, in, out)
	status, err := encoder.EncodeContext(ctx)
	if err != nil {
		t.Errorf("expected 'nil' as error, but received '%v'", err)
	}

	if status != Cancelled {
		t.Errorf("expected encoding status to be '%s', actual '%s'", Cancelled, status)
	}

	if out.Index != 0 {
		t.Error("nothing was supposed to be written to the output")
	}
}

func TestEncodeMultipleOutputs(t *testing.T) {
	testCases := []struct {
		title          string
		expectedLength int64
		input          string
	}{
		{
			title:          "empty_input",
			expectedLength: headerLength,
			input:          "",
		},
		{
			title:          "non_empty_input",
			expectedLength: headerLength + 2,
			input:          "Go",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			in := filebuffer.New([]byte(tc.input))
			out1 := filebuffer.New(nil)
			out2 := filebuffer.New(nil)
			enc := customise(t, "13", "")

			encoder := NewEncoder(enc, in, out1, out2)
			status, err := encoder.Encode()
			if !assert.Errors(t, false, err, assert.Fields{"input": tc.input}) {
				return
			}

			if status != Completed {
				t.Errorf("expected encoding status to be '%s', actual '%s'", Completed, status)
			}

			if tc.expectedLength != out1.Index {
				t.Errorf("encoded output#1 length expected to be %d, but it was %d", tc.expectedLength, out1.Index)
			}

			if tc.expectedLength != out2.Index {
				t.Errorf("encoded output#2 length expected to be %d, but it was %d", tc.expectedLength, out2.Index)
			}
		})
	}
}
