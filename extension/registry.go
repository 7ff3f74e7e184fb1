package extension

import (
	"sync"

	"github.com/xitonix/rotn/obfuscate"
)

// Registry is the extension point a host storage engine uses to load pluggable
// encryptors. Templates are registered under a unique name and customised per
// logical use. The registry owns the registered templates; Terminate releases
// all of them.
type Registry struct {
	mux        sync.Mutex
	encryptors map[string]obfuscate.Encryptor
	terminated bool
}

// NewRegistry creates a new, empty registry
func NewRegistry() *Registry {
	return &Registry{
		encryptors: make(map[string]obfuscate.Encryptor),
	}
}

// AddEncryptor registers the template encryptor under the given name
func (r *Registry) AddEncryptor(name string, encryptor obfuscate.Encryptor) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.terminated {
		return ErrTerminatedRegistry
	}
	if _, ok := r.encryptors[name]; ok {
		return ErrDuplicateEncryptor
	}
	r.encryptors[name] = encryptor
	return nil
}

// Encryptor returns the template encryptor registered under the given name
func (r *Registry) Encryptor(name string) (obfuscate.Encryptor, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.terminated {
		return nil, ErrTerminatedRegistry
	}
	encryptor, ok := r.encryptors[name]
	if !ok {
		return nil, ErrUnknownEncryptor
	}
	return encryptor, nil
}

// Customize creates a new keyed instance of the named template using the
// provided configuration
func (r *Registry) Customize(name string, cfg obfuscate.Config) (obfuscate.Encryptor, error) {
	encryptor, err := r.Encryptor(name)
	if err != nil {
		return nil, err
	}
	return encryptor.Customize(cfg)
}

// Terminate releases every registered template and marks the registry as
// unusable. Customised instances are owned by their callers and must be
// terminated individually.
func (r *Registry) Terminate() error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.terminated {
		return ErrTerminatedRegistry
	}
	var first error
	for _, encryptor := range r.encryptors {
		if err := encryptor.Terminate(); err != nil && first == nil {
			first = err
		}
	}
	r.encryptors = nil
	r.terminated = true
	return first
}
