package tagging

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"item-tagger/internal/common"
)

const (
	annotationOpen  = "{{{"
	annotationClose = "}}}"
	tagBrackets     = "[]()|{}"
)

func isTagBracket(r rune) bool {
	return strings.ContainsRune(tagBrackets, r)
}

// leadingToken splits a leading "<bracket><text><bracket>" token off s.
// inner is the text between the brackets and is never empty.
func leadingToken(s string) (inner, rest string, ok bool) {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !isTagBracket(first) {
		return "", "", false
	}

	body := s[size:]
	for i, r := range body {
		if !isTagBracket(r) {
			continue
		}

		if i == 0 {
			return "", "", false
		}

		return body[:i], body[i+utf8.RuneLen(r):], true
	}

	return "", "", false
}

// ExtractTag returns the existing tag of a name, without its brackets.
// A tag must be followed by at least one more character on the same line;
// a bare "[Junk]" is not a tag.
func ExtractTag(name string) (string, bool) {
	inner, rest, ok := leadingToken(name)
	if !ok {
		return "", false
	}

	line := strings.TrimSuffix(rest, "\n")
	if line == "" || strings.Contains(line, "\n") {
		return "", false
	}

	return inner, true
}

// ShouldTag reports whether name needs a (new) tag: it is non-blank and
// either carries no tag or carries one outside the valid-tag set.
func (c *Config) ShouldTag(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	tag, ok := ExtractTag(trimmed)
	if !ok {
		return true
	}

	return !c.IsTagValid(tag)
}

// CleanName strips decoration from a name until nothing more can be
// stripped: leading configured prefixes, leading bracket tags and "- "
// markers, and a trailing " {{{...}}}" component annotation. A strip never
// empties the name.
func (c *Config) CleanName(name string) string {
	s := strings.TrimSpace(name)
	for {
		next := c.stripLeading(c.stripAnnotation(s))
		if next == s {
			return s
		}

		s = next
	}
}

func (c *Config) stripLeading(s string) string {
	for _, p := range c.stripPrefixes {
		rest, ok := strings.CutPrefix(s, p)
		if !ok {
			continue
		}

		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			continue
		}

		if rest = strings.TrimSpace(rest); rest != "" {
			return rest
		}
	}

	if _, rest, ok := leadingToken(s); ok {
		if rest = strings.TrimSpace(rest); rest != "" {
			return rest
		}
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			if rest = strings.TrimSpace(rest); rest != "" {
				return rest
			}
		}
	}

	return s
}

// stripAnnotation removes one trailing whitespace + "{{{...}}}" block. The
// block is kept when the text before it is only a tag, so "[Junk] {{{x}}}"
// reads as prefix + name rather than name + annotation.
func (c *Config) stripAnnotation(s string) string {
	body, ok := strings.CutSuffix(s, annotationClose)
	if !ok {
		return s
	}

	open := strings.LastIndex(body, annotationOpen)
	if open < 0 || strings.ContainsAny(body[open+len(annotationOpen):], "{}") {
		return s
	}

	head := body[:open]
	trimmed := strings.TrimRightFunc(head, unicode.IsSpace)
	if trimmed == "" || len(trimmed) == len(head) || c.isBareTag(trimmed) {
		return s
	}

	return trimmed
}

func (c *Config) isBareTag(s string) bool {
	if _, rest, ok := leadingToken(s); ok && rest == "" {
		return true
	}

	for _, p := range c.stripPrefixes {
		if s == p {
			return true
		}
	}

	return false
}

// Rewrite composes the tagged name for cat. It returns false, and leaves
// the name alone, when cat is CategoryNone, has no prefix, or the name is
// blank. Component
// names are appended as " {{{a,b}}}" when any non-empty name remains.
//
// Rewrite is a fixed point on its own output: rewriting the result with
// the same category and components returns it unchanged.
func (c *Config) Rewrite(name string, cat Category, componentNames []string) (string, bool) {
	if cat == CategoryNone {
		return name, false
	}

	prefix := c.Prefix(cat)
	if prefix == "" {
		return name, false
	}

	base := c.CleanName(name)
	if base == "" {
		return name, false
	}

	result := prefix + " " + base

	if annotation := ComponentString(componentNames); annotation != "" {
		result += " " + annotation
	}

	return result, true
}

// ComponentString joins distinct component names as "{{{a,b}}}". Braces are
// removed from names; blank names are skipped. It returns "" if nothing is left.
func ComponentString(names []string) string {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.Map(func(r rune) rune {
			if r == '{' || r == '}' {
				return -1
			}

			return r
		}, n)
		cleaned = append(cleaned, strings.TrimSpace(n))
	}

	cleaned = common.Distinct(cleaned, func(s string) bool { return s == "" })
	if common.IsEmpty(cleaned) {
		return ""
	}

	return annotationOpen + strings.Join(cleaned, ",") + annotationClose
}
