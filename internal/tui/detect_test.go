package tui

import (
	"os"
	"testing"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DIRTALLY_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestDetectMode_DIRTALLY_PLAIN(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("DIRTALLY_PLAIN", "1")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("CI", "true")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_RegularFile(t *testing.T) {
	clearModeEnv(t)

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := DetectMode(f); got != ModePlain {
		t.Errorf("DetectMode(file) = %d, want ModePlain", got)
	}
}

func TestDetectMode_Nil(t *testing.T) {
	clearModeEnv(t)

	if got := DetectMode(nil); got != ModePlain {
		t.Errorf("DetectMode(nil) = %d, want ModePlain", got)
	}
}

func TestNewTheme_PlainRendersUnchanged(t *testing.T) {
	theme := NewTheme(ModePlain)

	for _, s := range []string{"/tmp/a.txt", "42", "MAX_FILE_COUNT"} {
		if got := theme.Error.Render(s); got != s {
			t.Errorf("plain Error.Render(%q) = %q", s, got)
		}
		if got := theme.Path.Render(s); got != s {
			t.Errorf("plain Path.Render(%q) = %q", s, got)
		}
	}
}
