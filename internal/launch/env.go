package launch

import (
	"fmt"
	"sort"
	"strings"
)

// MergeEnv applies overlay on top of base. Existing keys are replaced in place; new keys
// are appended in sorted order so the result is deterministic. base is not modified.
func MergeEnv(base []string, overlay map[string]string) []string {
	env := append([]string(nil), base...)
	if len(overlay) == 0 {
		return env
	}
	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = SetEnv(env, key, overlay[key])
	}
	return env
}

// SetEnv sets or appends a key=value entry in an env slice.
// Duplicate entries for key are collapsed into the first one.
func SetEnv(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	prefix := key + "="
	result := env[:0]
	replaced := false
	for _, existing := range env {
		if !strings.HasPrefix(existing, prefix) {
			result = append(result, existing)
			continue
		}
		if !replaced {
			result = append(result, entry)
			replaced = true
		}
	}
	if !replaced {
		result = append(result, entry)
	}
	return result
}
