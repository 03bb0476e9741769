package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hazard-run/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorHealthLow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("missing style for color %d", c)
		}
	}

	rgb, _ := core.ColorLava.RGB()
	if got := colorStyles[core.ColorLava].GetForeground(); got != lipgloss.Color(rgb.Hex()) {
		t.Errorf("lava style foreground = %v, expected %s", got, rgb.Hex())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "HP")
	s.DrawTextColored(3, 0, "███", core.ColorHealthHigh)
	s.DrawTextColored(0, 1, "≈≈≈", core.ColorLava)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "HP") || !strings.Contains(lines[0], "███") {
		t.Errorf("first row lost text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "≈≈≈") {
		t.Errorf("second row lost text: %q", lines[1])
	}
	if w := lipgloss.Width(lines[0]); w != 12 {
		t.Errorf("row width = %d, expected 12", w)
	}
}
