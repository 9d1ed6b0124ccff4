// Package hotkeys grabs the configured global key bindings and routes each
// press to a named command.
package hotkeys

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Handler manages global keyboard shortcuts
type Handler struct {
	xu       *xgbutil.XUtil
	root     xproto.Window
	dispatch func(string) error

	mu    sync.Mutex
	bound []string
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler routing presses to dispatch.
func NewHandler(xu *xgbutil.XUtil, root xproto.Window, dispatch func(string) error) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:       xu,
		root:     root,
		dispatch: dispatch,
	}
}

// RegisterBindings grabs every key in the binding map under the shared
// modifier mask. Keys that fail to grab (usually because another program
// holds them) are logged and skipped rather than failing the whole set.
func (h *Handler) RegisterBindings(modMask string, keys map[string]string) error {
	prefix, err := translateModMask(modMask)
	if err != nil {
		return err
	}

	registered := 0
	for key, command := range keys {
		command := command
		sequence := prefix + key
		if err := h.registerFunc(sequence, func() {
			if err := h.dispatch(command); err != nil {
				log.Printf("Command %q failed: %v", command, err)
			}
		}); err != nil {
			log.Printf("Failed to grab %s for %q: %v", sequence, command, err)
			continue
		}
		registered++
	}

	if registered == 0 && len(keys) > 0 {
		return fmt.Errorf("no hotkeys could be registered")
	}
	return nil
}

// registerFunc registers an arbitrary hotkey callback.
func (h *Handler) registerFunc(keySequence string, callback func()) error {
	err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.bound = append(h.bound, keySequence)
	h.mu.Unlock()
	return nil
}

// Detach releases every grabbed key, ahead of re-registering after a
// config reload.
func (h *Handler) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()

	keybind.Detach(h.xu, h.root)
	h.bound = nil
}

// translateModMask converts the config's "<Ctrl><Alt>" style modifier
// prefix into the "Control-Mod1-" form the key grabbing layer expects.
func translateModMask(modMask string) (string, error) {
	if modMask == "" {
		return "", nil
	}

	names := map[string]string{
		"ctrl":    "Control",
		"control": "Control",
		"alt":     "Mod1",
		"shift":   "Shift",
		"super":   "Mod4",
		"win":     "Mod4",
		"mod4":    "Mod4",
	}

	var parts []string
	rest := modMask
	for rest != "" {
		if !strings.HasPrefix(rest, "<") {
			return "", fmt.Errorf("malformed modifier mask %q", modMask)
		}
		end := strings.Index(rest, ">")
		if end < 0 {
			return "", fmt.Errorf("malformed modifier mask %q", modMask)
		}
		name := strings.ToLower(rest[1:end])
		translated, ok := names[name]
		if !ok {
			return "", fmt.Errorf("unknown modifier %q in mask %q", name, modMask)
		}
		parts = append(parts, translated)
		rest = rest[end+1:]
	}

	return strings.Join(parts, "-") + "-", nil
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
