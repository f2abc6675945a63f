package realmclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
)

// Watch listens for server invalidation events until ctx is done or the
// connection drops. Each event's keys are invalidated locally before onEvent (if
// any) is called, so other writers' changes show up on the next read.
func (c *Client) Watch(ctx context.Context, onEvent func(notify.Event)) error {
	wsURL, err := c.watchURL()
	if err != nil {
		return err
	}

	header := http.Header{}
	if c.apiKey != "" {
		header.Set("apikey", c.apiKey)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return transportError(err)
	}
	defer conn.Close()

	// closer unblocks ReadJSON when the caller cancels, and exits with Watch
	// when the connection drops first.
	closerCtx, stopCloser := context.WithCancel(ctx)
	defer stopCloser()
	go func() {
		<-closerCtx.Done()
		_ = conn.Close()
	}()

	for {
		var event notify.Event
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return transportError(err)
		}

		if event.Type == notify.EventInvalidate {
			c.Invalidate(ctx, event.Keys...)
		}

		if onEvent != nil {
			onEvent(event)
		}
	}
}

func (c *Client) watchURL() (string, error) {
	u, err := url.Parse(c.rc.BaseURL)
	if err != nil {
		return "", errors.Wrapf(err, "bad base url %q", c.rc.BaseURL)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/ws"
	return u.String(), nil
}
