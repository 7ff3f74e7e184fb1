package obfuscate

import (
	"bytes"
	"context"
	"testing"

	"github.com/mattetti/filebuffer"
	"github.com/xitonix/rotn/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		title     string
		input     string
		keyID     string
		secretKey string
	}{
		{
			title: "empty_input",
			input: "",
			keyID: "13",
		},
		{
			title: "rotation_only",
			input: "Hello, World!",
			keyID: "13",
		},
		{
			title:     "secret_key",
			input:     "MySecret",
			keyID:     "2",
			secretKey: "ABC",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			fields := assert.Fields{"input": tc.input, "key id": tc.keyID}
			enc := customise(t, tc.keyID, tc.secretKey)

			in := filebuffer.New([]byte(tc.input))
			encoded := filebuffer.New(nil)
			encoder := NewEncoder(enc, in, encoded)
			status, err := encoder.Encode()
			if !assert.Errors(t, false, err, fields) {
				return
			}
			if status != Completed {
				t.Errorf("expected encoding status to be '%s', actual '%s'", Completed, status)
			}

			decoded := filebuffer.New(nil)
			decoder := NewDecoder(enc, filebuffer.New(encoded.Buff.Bytes()), decoded)
			status, err = decoder.Decode()
			if !assert.Errors(t, false, err, fields) {
				return
			}
			if status != Completed {
				t.Errorf("expected decoding status to be '%s', actual '%s'", Completed, status)
			}

			if !bytes.Equal([]byte(tc.input), decoded.Buff.Bytes()) {
				t.Errorf("decoded result does not match the input (%s)", fields.String())
			}
		})
	}
}

func TestDecodeInvalidFrame(t *testing.T) {
	testCases := []struct {
		title string
		input []byte
	}{
		{
			title: "truncated_frame",
			input: make([]byte, headerLength-1),
		},
		{
			title: "single_byte_frame",
			input: []byte{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			enc := customise(t, "13", "")
			in := filebuffer.New(tc.input)
			out := filebuffer.New(nil)

			decoder := NewDecoder(enc, in, out)
			status, err := decoder.Decode()
			if err != ErrShortFrame {
				t.Errorf("expected '%v' as error, but received '%v'", ErrShortFrame, err)
			}
			if status != Failed {
				t.Errorf("expected decoding status to be '%s', actual '%s'", Failed, status)
			}
			if out.Index != 0 {
				t.Error("nothing was supposed to be written to the output")
			}
		})
	}
}

func TestDecodeCancelledContext(t *testing.T) {
	enc := customise(t, "13", "")

	encoded := filebuffer.New(nil)
	encoder := NewEncoder(enc, filebuffer.New([]byte("Hello")), encoded)
	if _, err := encoder.Encode(); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filebuffer.New(nil)
	decoder := NewDecoder(enc, filebuffer.New(encoded.Buff.Bytes()), out)
	status, err := decoder.DecodeContext(ctx)
	if err != nil {
		t.Errorf("expected 'nil' as error, but received '%v'", err)
	}

	if status != Cancelled {
		t.Errorf("expected decoding status to be '%s', actual '%s'", Cancelled, status)
	}

	if out.Index != 0 {
		t.Error("nothing was supposed to be written to the output")
	}
}

func TestDecodeMultipleOutputs(t *testing.T) {
	input := []byte("Hello")
	enc := customise(t, "13", "")

	encoded := filebuffer.New(nil)
	encoder := NewEncoder(enc, filebuffer.New(input), encoded)
	if _, err := encoder.Encode(); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	out1 := filebuffer.New(nil)
	out2 := filebuffer.New(nil)
	decoder := NewDecoder(enc, filebuffer.New(encoded.Buff.Bytes()), out1, out2)
	status, err := decoder.Decode()
	if !assert.Errors(t, false, err, nil) {
		return
	}
	if status != Completed {
		t.Errorf("expected decoding status to be '%s', actual '%s'", Completed, status)
	}

	if !bytes.Equal(input, out1.Buff.Bytes()) {
		t.Error("decoded result in output#1 does not match the input")
	}

	if !bytes.Equal(input, out2.Buff.Bytes()) {
		t.Error("decoded result in output#2 does not match the input")
	}
}
