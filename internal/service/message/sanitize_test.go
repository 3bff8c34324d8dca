package message

import (
	"strings"
	"testing"
)

func TestValidateRejectsEmpty(t *testing.T) {
	if _, ok := Validate("   ", 500); ok {
		t.Fatal("expected rejection of whitespace-only message")
	}
}

func TestValidateRejectsOverlong(t *testing.T) {
	if _, ok := Validate(strings.Repeat("a", 501), 500); ok {
		t.Fatal("expected rejection of overlong message")
	}
	if _, ok := Validate(strings.Repeat("a", 500), 500); !ok {
		t.Fatal("message at exactly the limit should pass")
	}
}

func TestValidateRejectsDangerousContent(t *testing.T) {
	dangerous := []string{
		"<script>alert(1)</script>",
		"hello <SCRIPT type='x'>\nsteal()\n</script> world",
		"click javascript:alert(1)",
		"<img onerror=alert(1) src=x>",
		"open data:text/html,<b>x</b>",
	}
	for _, msg := range dangerous {
		if reason, ok := Validate(msg, 500); ok {
			t.Fatalf("expected rejection of %q, got ok (reason %q)", msg, reason)
		}
	}
}

func TestValidateAcceptsPlainQuestions(t *testing.T) {
	for _, msg := range []string{
		"What are your React skills?",
		"Tell me about your projects & experience",
		"How's it going?",
	} {
		if reason, ok := Validate(msg, 500); !ok {
			t.Fatalf("expected %q to pass validation, rejected: %s", msg, reason)
		}
	}
}

func TestSanitizeStripsMarkup(t *testing.T) {
	got := Sanitize("<b>hello</b> world")
	if got != "hello world" {
		t.Fatalf("expected markup stripped, got %q", got)
	}
}

func TestSanitizeEscapesReservedCharacters(t *testing.T) {
	got := Sanitize(`Tom & Jerry's "show"`)
	want := "Tom &amp; Jerry&#x27;s &quot;show&quot;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	got := Sanitize("  hello\t\n  world  ")
	if got != "hello world" {
		t.Fatalf("expected normalized whitespace, got %q", got)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		`Tom & Jerry's <em>show</em>`,
		"a < b > c & d",
		"nested <div><span>content</span></div> here",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
