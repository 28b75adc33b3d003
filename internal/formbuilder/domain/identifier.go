package domain

import (
	"strings"
	"unicode"
)

const MaxIdentifierLength = 63

const (
	SystemColumnID        Identifier = "id"
	SystemColumnCreatedAt Identifier = "created_at"
)

// Identifier is a table or column name that passed SanitizeIdentifier. It is
// the only kind of name the schema store interpolates into SQL.
type Identifier string

func (i Identifier) String() string {
	return string(i)
}

func (i Identifier) IsSystemColumn() bool {
	return i == SystemColumnID || i == SystemColumnCreatedAt
}

// SanitizeIdentifier lowercases raw, turns whitespace runs into underscores and
// collapses repeated underscores. The result must only contain [a-z0-9_], must
// not be empty, must not start with a digit and must fit the engine limit.
func SanitizeIdentifier(raw string) (Identifier, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	lastUnderscore := false
	for _, r := range normalized {
		if unicode.IsSpace(r) || r == '_' {
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
			continue
		}
		if !isIdentifierRune(r) {
			return "", ErrInvalidIdentifier{Raw: raw, Reason: "only letters, digits, spaces and underscores are allowed"}
		}
		b.WriteRune(r)
		lastUnderscore = false
	}

	result := strings.Trim(b.String(), "_")
	switch {
	case result == "":
		return "", ErrInvalidIdentifier{Raw: raw, Reason: "must not be empty"}
	case result[0] >= '0' && result[0] <= '9':
		return "", ErrInvalidIdentifier{Raw: raw, Reason: "must not start with a digit"}
	case len(result) > MaxIdentifierLength:
		return "", ErrInvalidIdentifier{Raw: raw, Reason: "is too long"}
	}

	return Identifier(result), nil
}

func isIdentifierRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// Label renders an identifier for humans: underscores become spaces and every
// word is capitalised.
func (i Identifier) Label() string {
	words := strings.Split(string(i), "_")
	for idx, word := range words {
		if word == "" {
			continue
		}
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
