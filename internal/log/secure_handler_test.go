package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSecureHandlerMasking(t *testing.T) {
	t.Parallel()

	t.Run("sensitive key is masked", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("contact configured", "email", "someone@example.org")

		out := buf.String()
		if strings.Contains(out, "someone@example.org") {
			t.Errorf("email leaked into log output:\n%s", out)
		}
		if !strings.Contains(out, MaskValue) {
			t.Errorf("expected masked value in output:\n%s", out)
		}
	})

	t.Run("email-shaped value is masked regardless of key", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("user agent set", "agent_owner", "someone@example.org")

		if strings.Contains(buf.String(), "someone@example.org") {
			t.Errorf("email-shaped value leaked:\n%s", buf.String())
		}
	})

	t.Run("bearer token value is masked", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("header", "value", "Bearer abc123")

		if strings.Contains(buf.String(), "abc123") {
			t.Errorf("token leaked:\n%s", buf.String())
		}
	})

	t.Run("ordinary values pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("verification done", "names", 3, "url", "https://verifier.globalnames.org")

		out := buf.String()
		if !strings.Contains(out, "names=3") {
			t.Errorf("expected plain attribute in output:\n%s", out)
		}
		if strings.Contains(out, MaskValue) {
			t.Errorf("nothing should be masked here:\n%s", out)
		}
	})

	t.Run("group attributes are masked recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("request", slog.Group("client", slog.String("email", "someone@example.org")))

		if strings.Contains(buf.String(), "someone@example.org") {
			t.Errorf("grouped email leaked:\n%s", buf.String())
		}
	})

	t.Run("WithAttrs masks eagerly", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false).With("token", "s3cret")
		logger.Warn("call made")

		if strings.Contains(buf.String(), "s3cret") {
			t.Errorf("With-attached token leaked:\n%s", buf.String())
		}
	})
}

func TestSecureLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("quiet mode drops info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Info("should not appear")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got:\n%s", buf.String())
		}
	})

	t.Run("verbose mode keeps debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)
		logger.Debug("details")

		if buf.Len() == 0 {
			t.Error("expected debug output in verbose mode")
		}
	})
}
