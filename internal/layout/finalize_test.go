package layout

import (
	"errors"
	"testing"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/workarea"
)

func TestFinalizeNoMargins(t *testing.T) {
	wa := testArea()
	rect := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 450}

	if got := Finalize(rect, wa, Margins{}); got != rect {
		t.Errorf("Finalize() = %+v, want unchanged %+v", got, rect)
	}
}

func TestFinalizeHorizontalMargin(t *testing.T) {
	wa := testArea()
	rect := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 450}

	// 1% of a 1200-wide work area is 12px off each side.
	got := Finalize(rect, wa, Margins{XPercent: 1})
	want := geometry.Rect{X: 12, Y: 0, Width: 576, Height: 450}
	if got != want {
		t.Errorf("Finalize() = %+v, want %+v", got, want)
	}
}

func TestFinalizeMarginAgainstWorkArea(t *testing.T) {
	wa := testArea()

	// Margin pixels derive from the work area, so a narrow preset loses
	// the same 12px per side as a wide one.
	narrow := Finalize(geometry.Rect{X: 0, Y: 0, Width: 300, Height: 450}, wa, Margins{XPercent: 1})
	if narrow.Width != 276 {
		t.Errorf("narrow preset width = %d, want 276", narrow.Width)
	}
	wide := Finalize(geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 450}, wa, Margins{XPercent: 1})
	if wide.Width != 1176 {
		t.Errorf("wide preset width = %d, want 1176", wide.Width)
	}
}

func TestFinalizeClampsIntoWorkArea(t *testing.T) {
	wa := testArea()
	rect := geometry.Rect{X: 1000, Y: 800, Width: 600, Height: 450}

	got := Finalize(rect, wa, Margins{})
	if !wa.Rect.Contains(got) {
		t.Errorf("Finalize() = %+v escapes work area %+v", got, wa.Rect)
	}
}

func TestFinalizeOffsetWorkArea(t *testing.T) {
	wa := workarea.WorkArea{
		Monitor: 1,
		Rect:    geometry.Rect{X: 1920, Y: 30, Width: 1000, Height: 970},
	}
	rect := geometry.Rect{X: 1920, Y: 30, Width: 500, Height: 970}

	got := Finalize(rect, wa, Margins{XPercent: 2, YPercent: 2})
	want := geometry.Rect{X: 1940, Y: 49, Width: 460, Height: 932}
	if got != want {
		t.Errorf("Finalize() = %+v, want %+v", got, want)
	}
}

func TestMarginsValidate(t *testing.T) {
	tests := []struct {
		name    string
		margins Margins
		wantErr bool
	}{
		{"zero", Margins{}, false},
		{"typical", Margins{XPercent: 2, YPercent: 3}, false},
		{"negative", Margins{XPercent: -1}, true},
		{"hundred", Margins{YPercent: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.margins.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFrameAdjust(t *testing.T) {
	rect := geometry.Rect{X: 100, Y: 100, Width: 600, Height: 450}
	frame := FrameExtents{Left: 2, Right: 2, Top: 24, Bottom: 2}

	got := FrameAdjust(rect, frame)
	want := geometry.Rect{X: 102, Y: 124, Width: 596, Height: 424}
	if got != want {
		t.Errorf("FrameAdjust() = %+v, want %+v", got, want)
	}
}
