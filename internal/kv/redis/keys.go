package redis

import "fmt"

const (
	// KeyPrefix namespaces every collection value
	KeyPrefix = "backoffice:kv:"
	// KeyIndex is the set of all stored keys
	KeyIndex = "backoffice:kv:index"
)

// Key returns the Redis key for a storage key
func Key(key string) string {
	return KeyPrefix + key
}

// ExtractKey strips the namespace from a Redis key
func ExtractKey(redisKey string) (string, error) {
	if len(redisKey) <= len(KeyPrefix) || redisKey[:len(KeyPrefix)] != KeyPrefix {
		return "", fmt.Errorf("invalid kv key: %s", redisKey)
	}
	return redisKey[len(KeyPrefix):], nil
}
