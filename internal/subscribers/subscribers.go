// Package subscribers keeps the email capture list: lowercase, trimmed and
// free of duplicates.
package subscribers

import (
	"regexp"
	"strings"

	pkgerrors "github.com/famoussince/storefront/pkg/errors"
)

const (
	MsgInvalid   = "Enter a valid email."
	MsgDuplicate = "You're already on the list."
	MsgAccepted  = "Thanks, you're in."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// List is the persisted subscriber list in signup order.
type List []string

// Contains reports whether the normalized email is already listed.
func (l List) Contains(email string) bool {
	for _, existing := range l {
		if existing == email {
			return true
		}
	}
	return false
}

// Normalize trims surrounding whitespace and lowercases.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks the shape of an already normalized email.
func Validate(email string) error {
	if !emailPattern.MatchString(email) {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgInvalid).
			WithDetails(map[string]string{"email": "invalid format"})
	}
	return nil
}

// Subscribe normalizes and validates raw, then appends it. The input list
// is never modified. A duplicate yields a conflict error distinct from the
// validation error.
func Subscribe(l List, raw string) (List, string, error) {
	email := Normalize(raw)
	if err := Validate(email); err != nil {
		return l, "", err
	}
	if l.Contains(email) {
		return l, email, pkgerrors.New(pkgerrors.CodeConflict, MsgDuplicate)
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, email), email, nil
}
