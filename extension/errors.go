package extension

import "errors"

var (
	// ErrUnknownEncryptor will be raised if no encryptor has been registered under the requested name
	ErrUnknownEncryptor = errors.New("no encryptor has been registered under the given name")
	// ErrDuplicateEncryptor will be raised if an encryptor has already been registered under the same name
	ErrDuplicateEncryptor = errors.New("an encryptor has already been registered under the given name")
	// ErrTerminatedRegistry will be raised if the registry has already been torn down
	ErrTerminatedRegistry = errors.New("the registry has been terminated")
)
