package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/storage"
)

func TestResolveDamage(t *testing.T) {
	hero := character.New(100, nil, nil)

	steps := resolveDamage(hero, []string{"Enemy", "Rock", "Lava", "Spikes", "Bullet"})

	expected := []damageStep{
		{Tag: "Enemy", Amount: 10, Health: 90, Hurt: true},
		{Tag: "Rock", Amount: 0, Health: 90, Hurt: true},
		{Tag: "Lava", Amount: 50, Health: 40, Hurt: true},
		{Tag: "Spikes", Amount: 100, Health: -60, Hurt: true, Dead: true},
		{Tag: "Bullet", Amount: 5, Health: -65, Hurt: true, Dead: true},
	}
	if len(steps) != len(expected) {
		t.Fatalf("expected %d steps, got %d", len(expected), len(steps))
	}
	for i, want := range expected {
		if steps[i] != want {
			t.Errorf("step %d = %+v, expected %+v", i, steps[i], want)
		}
	}
}

func TestResolveDamageUnknownOnly(t *testing.T) {
	hero := character.New(100, nil, nil)

	steps := resolveDamage(hero, []string{"enemy", ""})
	for _, s := range steps {
		if s.Amount != 0 || s.Hurt || s.Health != 100 {
			t.Errorf("unknown tag %q changed the hero: %+v", s.Tag, s)
		}
	}
}

func TestKnownTags(t *testing.T) {
	if got := knownTags(); got != "Enemy, Spikes, Bullet, Lava" {
		t.Errorf("knownTags() = %q", got)
	}
	if !strings.Contains(damageCmd.Long, "Known tags: "+knownTags()+".") {
		t.Error("damage help should list the known tags")
	}
}

func TestAllStates(t *testing.T) {
	states := allStates()
	if len(states) != 16 {
		t.Fatalf("expected 16 states, got %d", len(states))
	}

	seen := make(map[character.MovementState]bool)
	for _, s := range states {
		seen[s] = true
	}
	if len(seen) != 16 {
		t.Errorf("states should be distinct, got %d unique", len(seen))
	}
}

func TestSummaryTable(t *testing.T) {
	out := summaryTable([]storage.TagDamage{
		{Tag: "Spikes", Hits: 1, Total: 100, Deaths: 1},
		{Tag: "Enemy", Hits: 3, Total: 30},
	})

	for _, want := range []string{"Tag", "Hits", "Damage", "Spikes", "Enemy", "100", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary table missing %q:\n%s", want, out)
		}
	}
}
