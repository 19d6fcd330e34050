package util

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Fingerprint derives a stable, compact visitor id from client attributes
func Fingerprint(parts ...string) string {
	return strconv.FormatUint(HashString(strings.Join(parts, "|")), 36)
}
