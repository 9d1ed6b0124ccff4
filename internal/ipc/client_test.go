package ipc

import (
	"bufio"
	"errors"
	"net"
	"path/filepath"
	"testing"
)

// serveOnce accepts one connection on the test socket and answers every
// request with the given response.
func serveOnce(t *testing.T, resp *Response) {
	t.Helper()

	path := socketPathForTest(t)

	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("failed to listen on %s: %v", path, err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		if _, err := bufio.NewReader(conn).ReadBytes('\n'); err != nil {
			return
		}
		data, err := resp.Marshal()
		if err != nil {
			return
		}
		conn.Write(append(data, '\n'))
	}()
}

// socketPathForTest points the runtime dir at a fresh temp dir so clients
// resolve a socket path no daemon is using.
func socketPathForTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	return filepath.Join(dir, "quicktile.sock")
}

func TestRunCommandDaemonUnavailable(t *testing.T) {
	socketPathForTest(t)

	// Nothing is listening: the error must identify the daemon as
	// unreachable so callers know falling back is safe.
	err := NewClient().RunCommand("top-left")
	if !errors.Is(err, ErrDaemonUnavailable) {
		t.Errorf("RunCommand() with no daemon = %v, want ErrDaemonUnavailable", err)
	}
}

func TestRunCommandDaemonReportedFailure(t *testing.T) {
	serveOnce(t, NewErrorResponse("window manager rejected placement"))

	// A failure the daemon reported is a command failure, not an
	// unreachable daemon; callers must never retry it standalone.
	err := NewClient().RunCommand("top-left")
	if err == nil {
		t.Fatal("RunCommand() = nil, want the daemon's error")
	}
	if errors.Is(err, ErrDaemonUnavailable) {
		t.Errorf("daemon-reported failure classified as unreachable: %v", err)
	}
}

func TestRunCommandOK(t *testing.T) {
	resp, err := NewOKResponse(nil)
	if err != nil {
		t.Fatal(err)
	}
	serveOnce(t, resp)

	if err := NewClient().RunCommand("top-left"); err != nil {
		t.Errorf("RunCommand() = %v, want nil", err)
	}
}
