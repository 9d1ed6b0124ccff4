package commands

import (
	"errors"
	"testing"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/workarea"
)

func TestResolveTilingDegenerate(t *testing.T) {
	e := NewEngine(nil)
	wa := workarea.WorkArea{Monitor: 2}

	_, _, err := e.ResolveTiling(layout.ZoneCenter, geometry.Rect{}, wa, nil, DefaultSettings())
	if !errors.Is(err, ErrDegenerateWorkArea) {
		t.Errorf("ResolveTiling() = %v, want ErrDegenerateWorkArea", err)
	}
}

func TestResolveTilingInvalidColumns(t *testing.T) {
	e := NewEngine(nil)
	wa := workarea.WorkArea{Rect: geometry.Rect{Width: 1200, Height: 900}}

	_, _, err := e.ResolveTiling(layout.ZoneCenter, geometry.Rect{}, wa, nil, Settings{Columns: 0})
	if !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Errorf("ResolveTiling() = %v, want ErrInvalidConfiguration", err)
	}
}

func TestResolveWorkspaceNavRaggedRow(t *testing.T) {
	e := NewEngine(nil)

	// Seven desktops in a 2x4 grid: the last row has only three. Stepping
	// down from desktop 3 (row 0, col 3) lands past the end.
	_, ok := e.ResolveWorkspaceNav(3, 7, 2, 4, NavDown, true)
	if ok {
		t.Error("step into the missing cell of a ragged row should be refused")
	}

	// Stepping down from column 0 is fine.
	target, ok := e.ResolveWorkspaceNav(0, 7, 2, 4, NavDown, true)
	if !ok || target != 4 {
		t.Errorf("ResolveWorkspaceNav(down from 0) = %d, %v; want 4, true", target, ok)
	}
}

func TestResolveWorkspaceNavRowWrap(t *testing.T) {
	e := NewEngine(nil)

	// Left from column 0 wraps within the row, not to the previous row.
	target, ok := e.ResolveWorkspaceNav(3, 6, 2, 3, NavLeft, true)
	if !ok || target != 5 {
		t.Errorf("ResolveWorkspaceNav(left from 3) = %d, %v; want 5, true", target, ok)
	}
}

func TestResolveMonitorStep(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name    string
		current int
		count   int
		delta   int
		wrap    bool
		want    int
	}{
		{"forward", 0, 3, 1, false, 1},
		{"wrap forward", 2, 3, 1, true, 0},
		{"saturate forward", 2, 3, 1, false, 2},
		{"wrap backward", 0, 3, -1, true, 2},
		{"saturate backward", 0, 3, -1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ResolveMonitorStep(tt.current, tt.count, tt.delta, tt.wrap)
			if got != tt.want {
				t.Errorf("ResolveMonitorStep() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonitorSwitchTargetDegenerateDestination(t *testing.T) {
	e := NewEngine(nil)
	from := workarea.WorkArea{Rect: geometry.Rect{Width: 1200, Height: 900}}

	_, ok := e.MonitorSwitchTarget(geometry.Rect{Width: 100, Height: 100}, from, workarea.WorkArea{})
	if ok {
		t.Error("switch onto a degenerate work area should be refused")
	}
}
