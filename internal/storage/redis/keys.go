package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "mazedle"

// recordKey returns the Redis key for a profile's record
func recordKey(profile, record string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, profile, record)
}
