package utils

import (
	"errors"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var errNoX11 = errors.New("x11 unavailable")

var (
	xConn        *xgb.Conn
	xRoot        xproto.Window
	xUnavailable bool
)

func initX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	xConn = conn
	xRoot = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// GetGlobalMousePosition queries the X11 root pointer, which tracks the
// mouse even when the wallpaper window never receives focus. After the
// first failed connection attempt (Wayland, headless) it stops retrying
// and keeps returning an error cheaply.
func GetGlobalMousePosition() (int, int, error) {
	if xConn == nil {
		if xUnavailable {
			return 0, 0, errNoX11
		}
		if err := initX11(); err != nil {
			xUnavailable = true
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}
