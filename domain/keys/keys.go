package keys

import (
	"strings"
)

const (
	// PfxHeal is used for prefixing healed label cache keys
	PfxHeal = "heal"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpCache"
	// PfxHealthCheck is used for the healthcheck probe key
	PfxHealthCheck = "healthCheck"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key, used as a metrics tag.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
