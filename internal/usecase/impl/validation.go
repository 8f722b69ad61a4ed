package impl

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 24
	passwordMinLen = 5
	passwordMaxLen = 24

	// passwordSpecialSet is the only set of non-alphanumeric characters a
	// password may contain, and at least one of them is required.
	passwordSpecialSet = "@$!%*?&"
)

// registrationRule is a single named validation predicate. Rules run in a
// fixed order and the first failure's message is reported for the request.
type registrationRule struct {
	check   func(input *usecase.RegisterInput) bool
	message string
}

var registrationRules = []registrationRule{
	{
		check: func(in *usecase.RegisterInput) bool {
			// Bounds are in characters, not bytes.
			length := utf8.RuneCountInString(in.Username)

			return length >= usernameMinLen && length <= usernameMaxLen
		},
		message: fmt.Sprintf("username must be between %d and %d characters", usernameMinLen, usernameMaxLen),
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			// Only the bare address-spec form is accepted. ParseAddress also
			// parses display-name mailboxes ("Alice <alice@example.com>"),
			// which would bypass the exact-match email uniqueness check.
			addr, err := mail.ParseAddress(in.Email)

			return err == nil && addr.Address == in.Email
		},
		message: "email must be a valid email address",
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return entity.Role(in.Type).IsValid()
		},
		message: fmt.Sprintf("type must be either %q or %q", entity.RoleUser, entity.RoleAdmin),
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			length := utf8.RuneCountInString(in.Password)

			return length >= passwordMinLen && length <= passwordMaxLen
		},
		message: fmt.Sprintf("password must be between %d and %d characters", passwordMinLen, passwordMaxLen),
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return strings.ContainsFunc(in.Password, unicode.IsLower)
		},
		message: "password must contain at least one lowercase letter",
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return strings.ContainsFunc(in.Password, unicode.IsUpper)
		},
		message: "password must contain at least one uppercase letter",
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return strings.ContainsFunc(in.Password, unicode.IsDigit)
		},
		message: "password must contain at least one digit",
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return strings.ContainsAny(in.Password, passwordSpecialSet)
		},
		message: fmt.Sprintf("password must contain at least one special character (%s)", passwordSpecialSet),
	},
	{
		check: func(in *usecase.RegisterInput) bool {
			return !strings.ContainsFunc(in.Password, func(r rune) bool {
				return !isAllowedPasswordRune(r)
			})
		},
		message: fmt.Sprintf("password may only contain letters, digits, and %s", passwordSpecialSet),
	},
}

func isAllowedPasswordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune(passwordSpecialSet, r)
	}
}

// validateRegistration runs all registration rules as a single batch and
// returns a ValidationError carrying the first failing rule's message, or nil
// when every rule passes.
func validateRegistration(input *usecase.RegisterInput) error {
	for _, rule := range registrationRules {
		if !rule.check(input) {
			return domainerrors.NewValidationError(rule.message)
		}
	}

	return nil
}
