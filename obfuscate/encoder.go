package obfuscate

import (
	"context"
	"io"
)

// Encoder is the type that obfuscates the entire content of an io.Reader into
// one or more io.Writer outputs using the specified encryptor. The input is
// framed as a single record.
type Encoder struct {
	input     io.Reader
	output    io.Writer
	encryptor Encryptor
}

// NewEncoder creates a new Encoder object
func NewEncoder(encryptor Encryptor, input io.Reader, outputs ...io.Writer) *Encoder {
	return &Encoder{
		input:     input,
		output:    io.MultiWriter(outputs...),
		encryptor: encryptor,
	}
}

// Encode obfuscates the io.Reader into the specified io.Writer outputs.
// This method will return an error if reading the input or the transform fails
func (e *Encoder) Encode() (Status, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return e.EncodeContext(ctx)
}

// EncodeContext obfuscates the io.Reader into the specified io.Writer outputs
// and receives cancellation signal on the context parameter.
// This method will return an error if reading the input or the transform fails
func (e *Encoder) EncodeContext(ctx context.Context) (Status, error) {
	payload, err := io.ReadAll(e.input)
	if err != nil {
		return Failed, err
	}

	if ctx.Err() != nil {
		return Cancelled, nil
	}

	framed := make([]byte, len(payload)+e.encryptor.Sizing())
	count, err := e.encryptor.Encrypt(payload, framed)
	if err != nil {
		return Failed, err
	}

	if ctx.Err() != nil {
		return Cancelled, nil
	}

	if _, err := e.output.Write(framed[:count]); err != nil {
		return Failed, err
	}
	return Completed, nil
}
