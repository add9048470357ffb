// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import "testing"

// plainNode satisfies Node but not Placed.
type plainNode struct{}

func (plainNode) Visible() bool  { return true }
func (plainNode) Alpha() float64 { return 1 }

func TestBaseDefaults(t *testing.T) {
	b := NewBase()

	p := b.Placement()
	want := Placement{ScaleX: 1, ScaleY: 1}
	if p != want {
		t.Errorf("Placement() = %+v, want %+v", p, want)
	}
	if !b.Visible() {
		t.Error("new node should be visible")
	}
	if b.Alpha() != 1 {
		t.Errorf("Alpha() = %g, want 1", b.Alpha())
	}
}

func TestBaseSetters(t *testing.T) {
	b := NewBase()

	b.SetPosition(3, 4)
	b.SetScale(2, 0.5)
	b.SetRotation(1.5)
	b.SetVisible(false)

	got := b.Placement()
	want := Placement{X: 3, Y: 4, ScaleX: 2, ScaleY: 0.5, Rotation: 1.5}
	if got != want {
		t.Errorf("Placement() = %+v, want %+v", got, want)
	}
	if b.Visible() {
		t.Error("SetVisible(false) not applied")
	}
}

func TestBaseAlphaClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
		{0, 0},
		{1, 1},
	}
	for _, tt := range tests {
		b := NewBase()
		b.SetAlpha(tt.in)
		if got := b.Alpha(); got != tt.want {
			t.Errorf("SetAlpha(%g): Alpha() = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestPlacementOf(t *testing.T) {
	s := NewSprite(nil)
	s.SetPosition(7, 8)

	p, ok := PlacementOf(s)
	if !ok {
		t.Fatal("PlacementOf(sprite) = false, want true")
	}
	if p.X != 7 || p.Y != 8 {
		t.Errorf("placement = %+v", p)
	}

	if _, ok := PlacementOf(plainNode{}); ok {
		t.Error("PlacementOf(plain node) = true, want false")
	}
}
