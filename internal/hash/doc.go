// Package hash provides the 64-bit digest primitive behind vector
// hashing.
//
// Vec2 hashes a vector by digesting its canonical binary encoding, so
// the combinator must be order-sensitive and well-distributed over
// short fixed-length inputs. FarmHash64 fits both: bytes at different
// offsets contribute differently (x and y never commute), and its
// avalanche behavior keeps nearby component values from clustering.
//
// The digest is not part of any persisted or wire contract; only the
// in-process consistency guarantee (equal values, equal digests)
// matters, so the primitive can be swapped without a format break.
package hash
