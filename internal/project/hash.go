package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// DigestOf hashes raw bytes into a Digest.
func DigestOf(data []byte) Digest {
	return sha256.Sum256(data)
}

// Combine builds an aggregate hash: H( base || extra1 || extra2 ... ).
// The order of extras must be deterministic.
func Combine(base Digest, extras ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(base[:])
	for _, d := range extras {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
