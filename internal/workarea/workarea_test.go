package workarea

import (
	"testing"

	"github.com/ssokolow/quicktile/internal/geometry"
)

var (
	monitorA = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	monitorB = geometry.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}
	desktop  = geometry.Rect{X: 0, Y: 0, Width: 3200, Height: 1080}
)

func TestResolveNoStruts(t *testing.T) {
	wa := Resolve(0, monitorA, desktop, nil)
	if wa.Rect != monitorA {
		t.Errorf("Resolve() = %+v, want full monitor %+v", wa.Rect, monitorA)
	}
	if wa.Degenerate() {
		t.Error("full monitor reported as degenerate")
	}
}

func TestResolveTopPanelSpanningDesktop(t *testing.T) {
	// A 30px panel along the whole desktop top edge trims both monitors.
	struts := []Strut{FullSpan(0, 0, 30, 0, desktop)}

	waA := Resolve(0, monitorA, desktop, struts)
	wantA := geometry.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}
	if waA.Rect != wantA {
		t.Errorf("monitor A work area = %+v, want %+v", waA.Rect, wantA)
	}

	waB := Resolve(1, monitorB, desktop, struts)
	wantB := geometry.Rect{X: 1920, Y: 30, Width: 1280, Height: 994}
	if waB.Rect != wantB {
		t.Errorf("monitor B work area = %+v, want %+v", waB.Rect, wantB)
	}
}

func TestResolveBottomPanelOnShortMonitor(t *testing.T) {
	// Monitors of different heights: the desktop bounding box is 1080 tall
	// but monitor B ends at y=1024. A 40px panel sitting at B's bottom
	// reserves depth from the desktop's bottom edge, spanning only B.
	strut := Strut{
		Bottom:       96, // 1080-1024 dead zone plus the 40px panel
		BottomStartX: 1920,
		BottomEndX:   3199,
	}

	waB := Resolve(1, monitorB, desktop, []Strut{strut})
	wantB := geometry.Rect{X: 1920, Y: 0, Width: 1280, Height: 984}
	if waB.Rect != wantB {
		t.Errorf("monitor B work area = %+v, want %+v", waB.Rect, wantB)
	}

	// Monitor A is not overlapped by the reservation and must keep its
	// full bounds.
	waA := Resolve(0, monitorA, desktop, []Strut{strut})
	if waA.Rect != monitorA {
		t.Errorf("monitor A work area = %+v, want untouched %+v", waA.Rect, monitorA)
	}
}

func TestResolveSideStrut(t *testing.T) {
	strut := Strut{
		Left:       64,
		LeftStartY: 0,
		LeftEndY:   1079,
	}

	wa := Resolve(0, monitorA, desktop, []Strut{strut})
	want := geometry.Rect{X: 64, Y: 0, Width: 1856, Height: 1080}
	if wa.Rect != want {
		t.Errorf("work area = %+v, want %+v", wa.Rect, want)
	}
}

func TestResolveDegenerate(t *testing.T) {
	// A reservation swallowing the whole desktop leaves nothing usable.
	struts := []Strut{FullSpan(3200, 0, 0, 0, desktop)}

	wa := Resolve(0, monitorA, desktop, struts)
	if !wa.Degenerate() {
		t.Errorf("fully reserved monitor not degenerate: %+v", wa.Rect)
	}
}

func TestResolveMultipleStruts(t *testing.T) {
	struts := []Strut{
		FullSpan(0, 0, 30, 0, desktop),
		FullSpan(0, 0, 0, 40, desktop),
	}

	wa := Resolve(0, monitorA, desktop, struts)
	want := geometry.Rect{X: 0, Y: 30, Width: 1920, Height: 1010}
	if wa.Rect != want {
		t.Errorf("work area = %+v, want %+v", wa.Rect, want)
	}
}
