// Package common holds small helpers shared across the client.
package common

// WipeByteArray zeroes the buffer in place. Use it on password buffers as
// soon as they are no longer needed. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
