package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandel_gray"
)

// maxImageBytes bounds the PNG a server may send back.
const maxImageBytes = 64 << 20

// wsImgProvider implements mandel.ImgProvider over the server's websocket endpoint.
type wsImgProvider struct {
	conn *websocket.Conn
}

func dialImgProvider(ctx context.Context, url string) (*wsImgProvider, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	conn.SetReadLimit(maxImageBytes)
	return &wsImgProvider{conn: conn}, nil
}

// GetImage implements mandel.ImgProvider.
func (p *wsImgProvider) GetImage(ctx context.Context, req mandel.RenderRequest) ([]byte, error) {
	if err := wsjson.Write(ctx, p.conn, req); err != nil {
		return nil, err
	}

	typ, data, err := p.conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	if typ == websocket.MessageBinary {
		return data, nil
	}

	var reply mandel.RenderReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("unexpected reply %q: %w", data, err)
	}
	return nil, fmt.Errorf("%w: %s", mandel.ErrRemote, reply.Error)
}

func (p *wsImgProvider) Close() error {
	return p.conn.Close(websocket.StatusNormalClosure, "")
}

var _ mandel.ImgProvider = (*wsImgProvider)(nil)
