package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// GatherStruts collects the strut reservations of every client window.
// Panels publishing only the legacy _NET_WM_STRUT get full-edge spans
// against the given desktop bounding box.
func (c *Connection) GatherStruts(desktop geometry.Rect) ([]workarea.Strut, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	var struts []workarea.Strut
	for _, win := range clients {
		partial, err := ewmh.WmStrutPartialGet(c.XUtil, win)
		if err == nil && partial != nil {
			struts = append(struts, workarea.Strut{
				Left:   int(partial.Left),
				Right:  int(partial.Right),
				Top:    int(partial.Top),
				Bottom: int(partial.Bottom),

				LeftStartY:   int(partial.LeftStartY),
				LeftEndY:     int(partial.LeftEndY),
				RightStartY:  int(partial.RightStartY),
				RightEndY:    int(partial.RightEndY),
				TopStartX:    int(partial.TopStartX),
				TopEndX:      int(partial.TopEndX),
				BottomStartX: int(partial.BottomStartX),
				BottomEndX:   int(partial.BottomEndX),
			})
			continue
		}

		plain, err := ewmh.WmStrutGet(c.XUtil, win)
		if err == nil && plain != nil {
			struts = append(struts, workarea.FullSpan(
				int(plain.Left), int(plain.Right),
				int(plain.Top), int(plain.Bottom),
				desktop,
			))
		}
	}
	return struts, nil
}
