// Package ident generates opaque item identifiers and unique human-readable codes.
package ident

import (
	"strconv"

	"github.com/google/uuid"
)

// DefaultCodePrefix is used for question codes when no prefix is given.
const DefaultCodePrefix = "Q"

// GenerateID returns a process-unique opaque identifier.
// IDs are UUIDv7 strings: a millisecond timestamp followed by random bits.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}

// CodeSet is a set of codes already taken in a document.
type CodeSet map[string]struct{}

// NewCodeSet builds a set from the given codes.
func NewCodeSet(codes ...string) CodeSet {
	set := make(CodeSet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether code is in the set.
func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Add inserts code into the set.
func (s CodeSet) Add(code string) {
	s[code] = struct{}{}
}

// UniqueCode returns prefix+N for the smallest positive N not present in existing.
// An empty prefix falls back to DefaultCodePrefix.
func UniqueCode(existing CodeSet, prefix string) string {
	if prefix == "" {
		prefix = DefaultCodePrefix
	}
	for n := 1; ; n++ {
		code := prefix + strconv.Itoa(n)
		if !existing.Has(code) {
			return code
		}
	}
}

// ReserveCode generates a unique code and adds it to existing so that
// consecutive calls never hand out the same code.
func ReserveCode(existing CodeSet, prefix string) string {
	code := UniqueCode(existing, prefix)
	existing.Add(code)
	return code
}
