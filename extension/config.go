package extension

// MapConfig is a map backed implementation of the obfuscate.Config lookup service
type MapConfig map[string]string

// Get returns the value of the given configuration key and whether the key has been configured
func (m MapConfig) Get(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
