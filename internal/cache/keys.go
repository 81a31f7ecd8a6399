package cache

import "fmt"

const keyPrefix = "quizforge"

// ActivationTokenKey builds the Redis key holding the pending activation
// token for a user.
func ActivationTokenKey(userID string) string {
	return fmt.Sprintf("%s:activation:%s", keyPrefix, userID)
}
