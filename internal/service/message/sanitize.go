package message

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns that reject a message outright before any cleanup. Validation runs
// on the raw input so sanitization cannot mask an injection attempt.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)data:text/html`),
}

// knownEntity matches the escape sequences Sanitize itself produces, so a
// second pass leaves already-escaped text untouched.
var knownEntity = regexp.MustCompile(`&(amp|lt|gt|quot|#x27);`)

// strippedTag matches an escaped tag-like run between escaped angle brackets.
var strippedTag = regexp.MustCompile(`&lt;[^&]*&gt;`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Validate checks the raw message against the length bounds and the
// dangerous-content patterns. It returns a reason string for rejections.
func Validate(raw string, maxLength int) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "message is empty", false
	}
	if len(raw) > maxLength {
		return fmt.Sprintf("message exceeds maximum length of %d characters", maxLength), false
	}
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(raw) {
			return "message contains potentially harmful content", false
		}
	}
	return "", true
}

// Sanitize neutralizes markup in a validated message: escape the five HTML
// reserved characters, drop escaped tag-like runs, and normalize whitespace.
// The function is idempotent, so Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	out := escapePreservingEntities(raw)
	out = strippedTag.ReplaceAllString(out, "")
	out = whitespaceRun.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// escapePreservingEntities escapes & < > " ' but leaves the entities a prior
// Sanitize pass already emitted. The input is split around known entities and
// only the plain segments are escaped, ampersand first.
func escapePreservingEntities(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		loc := knownEntity.FindStringIndex(s)
		if loc == nil {
			b.WriteString(escapeSegment(s))
			break
		}
		b.WriteString(escapeSegment(s[:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		s = s[loc[1]:]
	}

	return b.String()
}

var segmentEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeSegment(s string) string {
	return segmentEscaper.Replace(s)
}
