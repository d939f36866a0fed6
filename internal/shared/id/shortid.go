// Package id generates Stripe-style prefixed identifiers (tkt_xxx, tpl_xxx, rel_xxx).
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

const (
	PrefixTicket       = "tkt"
	PrefixTemplate     = "tpl"
	PrefixRelationship = "rel"
)

// Generate creates a cryptographically random, URL-safe Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates an ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	shortID, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + shortID, nil
}

// ParsePrefixedID splits "tkt_xK9mP2vL3nQa" into ("tkt", "xK9mP2vL3nQa").
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	prefix, shortID, found := strings.Cut(prefixedID, "_")
	if !found || prefix == "" || shortID == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return prefix, shortID, nil
}

// ValidatePrefix checks that prefixedID is well formed and carries expectedPrefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

func NewTicketID() (string, error) {
	return GenerateWithPrefix(PrefixTicket, DefaultLength)
}

func NewTemplateID() (string, error) {
	return GenerateWithPrefix(PrefixTemplate, DefaultLength)
}

func NewRelationshipID() (string, error) {
	return GenerateWithPrefix(PrefixRelationship, DefaultLength)
}
