package obfuscate

import "errors"

var (
	// ErrInvalidKeyID will be raised by Customize if the configured key id is not a non-negative integer
	ErrInvalidKeyID = errors.New("key id must be a non-negative integer")
	// ErrNonAlphabeticKey will be raised by Customize if the secret key contains non-alphabetic characters
	ErrNonAlphabeticKey = errors.New("secret key must only contain alphabetic characters")
	// ErrBufferTooSmall will be raised by Encrypt/Decrypt if the destination buffer cannot hold the result
	ErrBufferTooSmall = errors.New("destination buffer is too small")
	// ErrShortFrame will be raised by Decrypt if the input is shorter than the framing header
	ErrShortFrame = errors.New("encrypted frame is shorter than the header")

	// ErrOperationInProgress is the result of any invalid operation on an entity which is already being processed
	ErrOperationInProgress = errors.New("the operation is in progress")
)
