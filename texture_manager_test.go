package phaser

import (
	"errors"
	"testing"
)

func TestTextureManagerAddGet(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	rt, _ := NewRenderTexture(game)
	if err := m.Add("minimap", rt); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := m.Get("minimap"); got != rt {
		t.Errorf("Get() = %p, want %p", got, rt)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if got := m.Get("absent"); got != nil {
		t.Errorf("Get(absent) = %p, want nil", got)
	}
}

func TestTextureManagerAddUsesTextureKey(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	rt, _ := NewRenderTexture(game, WithKey("hud"))
	if err := m.Add("", rt); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := m.Get("hud"); got != rt {
		t.Error("texture not found under its own key")
	}
}

func TestTextureManagerAddEmptyKey(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	rt, _ := NewRenderTexture(game)
	if err := m.Add("", rt); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Add with no key anywhere = %v, want ErrEmptyKey", err)
	}
}

func TestTextureManagerReplace(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	a, _ := NewRenderTexture(game)
	b, _ := NewRenderTexture(game)

	if err := m.Add("k", a); err != nil {
		t.Fatal(err)
	}
	if err := m.Add("k", b); err != nil {
		t.Fatal(err)
	}
	if got := m.Get("k"); got != b {
		t.Error("Add should replace the previous entry")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d after replace, want 1", m.Len())
	}
}

func TestTextureManagerRemove(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	rt, _ := NewRenderTexture(game)
	m.Add("k", rt)

	if !m.Remove("k") {
		t.Error("Remove(k) = false, want true")
	}
	if m.Remove("k") {
		t.Error("second Remove(k) = true, want false")
	}
	if got := m.Get("k"); got != nil {
		t.Error("texture still resolvable after Remove")
	}
	// Removal does not destroy: the texture is still usable.
	if rt.Snapshot() == nil {
		t.Error("removed texture was destroyed")
	}
}

func TestTextureManagerStats(t *testing.T) {
	game, _ := newFakeGame()
	m := NewTextureManager()

	rt, _ := NewRenderTexture(game)
	m.Add("k", rt)

	m.Get("k")
	m.Get("k")
	m.Get("missing")

	s := m.Stats()
	if s.Hits != 2 {
		t.Errorf("Hits = %d, want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1", s.Misses)
	}
}
