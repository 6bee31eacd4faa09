package wpsignals

import (
	"slices"
	"strings"
)

// ClassList is an ordered set of class tokens as they appear in an
// element's class attribute. Duplicates are dropped, keeping the first
// occurrence, so enumeration order matches the DOM's token list.
type ClassList []string

// ParseClassList splits a class attribute value on ASCII whitespace.
func ParseClassList(value string) ClassList {
	fields := strings.FieldsFunc(value, isASCIIWhitespace)
	if len(fields) == 0 {
		return nil
	}

	list := make(ClassList, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(list, f) {
			list = append(list, f)
		}
	}
	return list
}

// Contains reports whether token is in the list.
func (c ClassList) Contains(token string) bool {
	return slices.Contains(c, token)
}

// First returns the first token for which match returns true.
func (c ClassList) First(match func(token string) bool) (string, bool) {
	for _, token := range c {
		if match(token) {
			return token, true
		}
	}
	return "", false
}

// FirstWithPrefix returns the first token starting with prefix that does
// not also start with any of the exclude prefixes.
func (c ClassList) FirstWithPrefix(prefix string, exclude ...string) (string, bool) {
	return c.First(func(token string) bool {
		if !strings.HasPrefix(token, prefix) {
			return false
		}
		for _, ex := range exclude {
			if strings.HasPrefix(token, ex) {
				return false
			}
		}
		return true
	})
}

// TrimmedWithPrefix is like FirstWithPrefix but returns the token with
// prefix removed. The remainder may be empty when the token equals prefix.
func (c ClassList) TrimmedWithPrefix(prefix string, exclude ...string) (string, bool) {
	token, ok := c.FirstWithPrefix(prefix, exclude...)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(token, prefix), true
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
