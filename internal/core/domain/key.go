package domain

import "regexp"

var validKeyRegex = regexp.MustCompile("^[A-Za-z0-9_-]+$")

// ValidateKey checks that a challenge key is a single, safe path segment.
// Keys arrive from untrusted callers and are used to build file names.
func ValidateKey(key string) error {
	if !validKeyRegex.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}
