package platform

import (
	"testing"

	"github.com/ssokolow/quicktile/internal/geometry"
)

func TestDesktopBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		monitors []Monitor
		want     geometry.Rect
	}{
		{
			name: "single monitor",
			monitors: []Monitor{
				{Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			want: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		{
			name: "side by side with mismatched heights",
			monitors: []Monitor{
				{Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
				{Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}},
			},
			want: geometry.Rect{X: 0, Y: 0, Width: 3200, Height: 1080},
		},
		{
			name: "monitor left of origin",
			monitors: []Monitor{
				{Bounds: geometry.Rect{X: -1280, Y: 0, Width: 1280, Height: 1024}},
				{Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			want: geometry.Rect{X: -1280, Y: 0, Width: 3200, Height: 1080},
		},
		{
			name:     "no monitors",
			monitors: nil,
			want:     geometry.Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DesktopBoundingBox(tt.monitors); got != tt.want {
				t.Errorf("DesktopBoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
