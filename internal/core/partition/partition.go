package partition

import "hash/fnv"

// For returns the owner index in [0, n) for a period key.
// Stable and deterministic: the same key always maps to the same owner for a
// given n, which is what lets one worker own a key for a whole run.
// Uses FNV-32a (stdlib, fast, well-distributed).
func For(key string, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}
