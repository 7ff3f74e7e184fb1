package obfuscate

import (
	"context"
	"io"
)

// Decoder is the type that recovers the payload of a framed io.Reader into one
// or more io.Writer outputs using the specified encryptor.
type Decoder struct {
	input     io.Reader
	output    io.Writer
	encryptor Encryptor
}

// NewDecoder creates a new Decoder object
func NewDecoder(encryptor Encryptor, input io.Reader, outputs ...io.Writer) *Decoder {
	return &Decoder{
		input:     input,
		output:    io.MultiWriter(outputs...),
		encryptor: encryptor,
	}
}

// Decode recovers the payload of the Reader into the specified Writer(s).
//
// This method will return an error if the input is not a valid frame or the
// transform fails. The content of the input must be encoded with the same
// configuration.
func (d *Decoder) Decode() (Status, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return d.DecodeContext(ctx)
}

// DecodeContext recovers the payload of the Reader into the specified Writer(s)
// and receives cancellation signal on the context parameter.
//
// It will return an error if the input is not a valid frame or the transform
// fails. The content of the input must be encoded with the same configuration.
func (d *Decoder) DecodeContext(ctx context.Context) (Status, error) {
	framed, err := io.ReadAll(d.input)
	if err != nil {
		return Failed, err
	}

	if ctx.Err() != nil {
		return Cancelled, nil
	}

	size := len(framed) - d.encryptor.Sizing()
	if size < 0 {
		size = 0
	}
	payload := make([]byte, size)
	count, err := d.encryptor.Decrypt(framed, payload)
	if err != nil {
		return Failed, err
	}

	if ctx.Err() != nil {
		return Cancelled, nil
	}

	if _, err := d.output.Write(payload[:count]); err != nil {
		return Failed, err
	}
	return Completed, nil
}
