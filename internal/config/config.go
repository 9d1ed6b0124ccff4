// Package config loads and validates the quicktile configuration file.
//
// Every field has a built-in default and invalid values demote to that
// default with a logged warning rather than aborting startup; a typo in
// one setting should not take the hotkey daemon down.
package config

import (
	"fmt"
	"log"
	"sort"
)

// Config is the effective configuration after defaults and validation.
type Config struct {
	// ColumnCount is how many columns edge and corner presets divide the
	// work area into. Cycle sequences have ColumnCount+1 entries.
	ColumnCount int `yaml:"column_count"`

	// MarginXPercent and MarginYPercent shrink every placed rectangle
	// inward, measured as a percentage of the work area's dimensions.
	MarginXPercent float64 `yaml:"margin_x_percent"`
	MarginYPercent float64 `yaml:"margin_y_percent"`

	// MovementsWrap makes monitor and workspace stepping wrap around at
	// the ends instead of stopping there.
	MovementsWrap *bool `yaml:"movements_wrap"`

	// ModMask is the modifier prefix shared by all key bindings,
	// e.g. "<Ctrl><Alt>".
	ModMask string `yaml:"mod_mask"`

	// Keys maps key names (combined with ModMask) to command names.
	Keys map[string]string `yaml:"keys"`
}

// Default returns the stock configuration, matching the bindings shipped
// in the sample config: the numeric keypad mirrors the 3x3 zone grid.
func Default() *Config {
	wrap := true
	return &Config{
		ColumnCount:    3,
		MarginXPercent: 0,
		MarginYPercent: 0,
		MovementsWrap:  &wrap,
		ModMask:        "<Ctrl><Alt>",
		Keys: map[string]string{
			"KP_1":        "bottom-left",
			"KP_2":        "bottom",
			"KP_3":        "bottom-right",
			"KP_4":        "left",
			"KP_5":        "center",
			"KP_6":        "right",
			"KP_7":        "top-left",
			"KP_8":        "top",
			"KP_9":        "top-right",
			"KP_0":        "maximize",
			"V":           "vertical-maximize",
			"H":           "horizontal-maximize",
			"KP_Add":      "monitor-next",
			"KP_Subtract": "monitor-prev",
			"KP_Enter":    "monitor-switch",
		},
	}
}

// Wrap reports the effective MovementsWrap value.
func (c *Config) Wrap() bool {
	if c.MovementsWrap == nil {
		return true
	}
	return *c.MovementsWrap
}

// Validate demotes out-of-range values to their defaults, logging each
// demotion. Key bindings to unknown commands are dropped here only if a
// vocabulary check is supplied; the dispatch layer rejects them anyway.
func (c *Config) Validate(known func(string) bool) {
	def := Default()

	if c.ColumnCount < 1 {
		log.Printf("config: column_count %d invalid, using %d", c.ColumnCount, def.ColumnCount)
		c.ColumnCount = def.ColumnCount
	}
	if c.MarginXPercent < 0 || c.MarginXPercent >= 100 {
		log.Printf("config: margin_x_percent %v out of range [0,100), using %v", c.MarginXPercent, def.MarginXPercent)
		c.MarginXPercent = def.MarginXPercent
	}
	if c.MarginYPercent < 0 || c.MarginYPercent >= 100 {
		log.Printf("config: margin_y_percent %v out of range [0,100), using %v", c.MarginYPercent, def.MarginYPercent)
		c.MarginYPercent = def.MarginYPercent
	}
	if c.MovementsWrap == nil {
		c.MovementsWrap = def.MovementsWrap
	}
	if c.ModMask == "" {
		c.ModMask = def.ModMask
	}
	if c.Keys == nil {
		c.Keys = def.Keys
	}

	if known != nil {
		for key, command := range c.Keys {
			if !known(command) {
				log.Printf("config: key %q bound to unknown command %q, ignoring", key, command)
				delete(c.Keys, key)
			}
		}
	}
}

// Bindings returns the key bindings as sorted "key -> command" lines for
// display.
func (c *Config) Bindings() []string {
	keys := make([]string, 0, len(c.Keys))
	for k := range c.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s%s -> %s", c.ModMask, k, c.Keys[k])
	}
	return lines
}
