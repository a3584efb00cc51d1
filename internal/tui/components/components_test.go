package components

import (
	"strings"
	"testing"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	if s.CheckboxOn == "" {
		t.Error("CheckboxOn is empty")
	}
	if s.CheckboxOff == "" {
		t.Error("CheckboxOff is empty")
	}
	if s.RadioOn == s.RadioOff {
		t.Error("radio markers are identical")
	}
	if s.StatusDone == "" {
		t.Error("StatusDone is empty")
	}
	if s.StatusInvalid == "" {
		t.Error("StatusInvalid is empty")
	}
}

func TestRenderBanner(t *testing.T) {
	s := DefaultStyles()
	out := RenderBanner(s, "Applicant Dossier")
	if !strings.Contains(out, "Applicant Dossier") {
		t.Errorf("banner missing title: %q", out)
	}
	if !strings.Contains(RenderBanner(s, ""), "dossier") {
		t.Error("empty title should fall back to the program name")
	}
}

func TestProgressBar(t *testing.T) {
	s := DefaultStyles()
	tests := []struct {
		fraction float64
		full     int
	}{
		{0, 0},
		{0.25, 5},
		{0.5, 10},
		{1, 20},
		{1.5, 20},
	}
	for _, tt := range tests {
		out := ProgressBar(s, tt.fraction, 20)
		if got := strings.Count(out, "█"); got != tt.full {
			t.Errorf("ProgressBar(%v) full cells = %d, want %d", tt.fraction, got, tt.full)
		}
		if got := strings.Count(out, "░"); got != 20-tt.full {
			t.Errorf("ProgressBar(%v) empty cells = %d, want %d", tt.fraction, got, 20-tt.full)
		}
	}
}

func TestNewSpinner(t *testing.T) {
	s := DefaultStyles()
	sp := NewSpinner(s)
	// Spinner should produce a non-empty frame.
	if sp.View() == "" {
		t.Error("spinner View() is empty")
	}
}
