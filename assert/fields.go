package assert

import (
	"fmt"
	"strings"
)

// Fields carries the test case context which gets attached to failure messages
type Fields map[string]interface{}

// String renders the fields as a comma separated key:value list
func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	}
	return strings.Join(parts, ",")
}
