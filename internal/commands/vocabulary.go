package commands

import (
	"sort"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
)

// registry is the full command vocabulary. Names outside this map are
// rejected at dispatch time.
var registry = map[string]func(*Dispatcher) error{}

func init() {
	for _, zone := range layout.Zones {
		zone := zone
		registry[string(zone)] = func(d *Dispatcher) error {
			return d.runTile(zone)
		}

		g, err := geometry.ParseGravity(string(zone))
		if err != nil {
			continue
		}
		registry["move-to-"+string(zone)] = func(d *Dispatcher) error {
			return d.runMove(g)
		}
	}

	registry["monitor-next"] = func(d *Dispatcher) error { return d.runMonitorStep(1, false) }
	registry["monitor-prev"] = func(d *Dispatcher) error { return d.runMonitorStep(-1, false) }
	registry["monitor-switch"] = func(d *Dispatcher) error { return d.runMonitorStep(1, true) }

	directions := map[string]NavDirection{
		"next":  NavNext,
		"prev":  NavPrev,
		"up":    NavUp,
		"down":  NavDown,
		"left":  NavLeft,
		"right": NavRight,
	}
	for name, dir := range directions {
		dir := dir
		registry["workspace-go-"+name] = func(d *Dispatcher) error {
			return d.runWorkspaceNav(dir, false)
		}
		registry["workspace-send-"+name] = func(d *Dispatcher) error {
			return d.runWorkspaceNav(dir, true)
		}
	}

	registry["maximize"] = func(d *Dispatcher) error { return d.runMaximize(true, true) }
	registry["vertical-maximize"] = func(d *Dispatcher) error { return d.runMaximize(false, true) }
	registry["horizontal-maximize"] = func(d *Dispatcher) error { return d.runMaximize(true, false) }
}

// List returns every recognized command name in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is in the vocabulary.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}
