package phaser

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget(t *testing.T) {
	pt := NewPixmapTarget(10, 5, FilterLinear)

	if pt.Width() != 10 || pt.Height() != 5 {
		t.Errorf("size = %dx%d, want 10x5", pt.Width(), pt.Height())
	}
	if pt.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", pt.Format())
	}
	if pt.Filter() != FilterLinear {
		t.Errorf("Filter() = %v, want FilterLinear", pt.Filter())
	}
	if len(pt.Pixels()) != 10*5*4 {
		t.Errorf("len(Pixels()) = %d, want %d", len(pt.Pixels()), 10*5*4)
	}
	if pt.Stride() != 10*4 {
		t.Errorf("Stride() = %d, want %d", pt.Stride(), 10*4)
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	pt := NewPixmapTargetFromImage(img, FilterNearest)
	if pt.Image() != img {
		t.Error("Image() should return the wrapped image, not a copy")
	}
	if got := pt.Image().RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("existing content lost: %v", got)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	pt := NewPixmapTarget(4, 4, FilterNearest)

	pt.Clear(color.RGBA{B: 255, A: 255})
	if got := pt.Image().RGBAAt(2, 2); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("after fill clear: %v", got)
	}

	pt.Clear(color.Transparent)
	for i, v := range pt.Pixels() {
		if v != 0 {
			t.Fatalf("byte %d = %d after transparent clear, want 0", i, v)
		}
	}
}

func TestPixmapTargetSnapshot(t *testing.T) {
	pt := NewPixmapTarget(4, 4, FilterNearest)
	pt.Clear(color.RGBA{G: 255, A: 255})

	snap := pt.Snapshot()
	if snap == pt.Image() {
		t.Fatal("Snapshot() must return a copy")
	}
	// Mutating the snapshot leaves the target untouched.
	snap.SetRGBA(0, 0, color.RGBA{})
	if got := pt.Image().RGBAAt(0, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("snapshot mutation leaked into target: %v", got)
	}
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		f    Filter
		want string
	}{
		{FilterNearest, "nearest"},
		{FilterLinear, "linear"},
		{Filter(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Filter(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
