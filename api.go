package mandel

import (
	"context"
	"errors"
)

// ErrRemote wraps errors reported by a render server.
var ErrRemote = errors.New("mandel: server error")

// ImgProvider returns PNG encoded renders.
// It is implemented by the render server and by the websocket client talking to it.
type ImgProvider interface {
	GetImage(ctx context.Context, req RenderRequest) ([]byte, error)
}

// RenderRequest is sent by clients as a JSON text message over the websocket endpoint.
// Either Preset or both corners must be set.
type RenderRequest struct {
	Size       string `json:"size"`
	UpperLeft  string `json:"upper_left,omitempty"`
	LowerRight string `json:"lower_right,omitempty"`
	Preset     string `json:"preset,omitempty"`
}

// Job parses the request.
func (r RenderRequest) Job() (Job, error) {
	if r.Preset != "" {
		return PresetJob(r.Size, r.Preset)
	}
	return ParseJob(r.Size, r.UpperLeft, r.LowerRight)
}

// RenderReply is sent back as a JSON text message when a request fails.
// Successful renders are sent as a binary message holding the PNG.
type RenderReply struct {
	Error string `json:"error"`
}

// PresetInfo describes a preset region in the textual form RenderRequest uses.
type PresetInfo struct {
	Name       string `json:"name"`
	UpperLeft  string `json:"upper_left"`
	LowerRight string `json:"lower_right"`
}

// Presets lists all preset regions sorted by name.
func Presets() []PresetInfo {
	var infos []PresetInfo
	for _, name := range PresetNames() {
		pl := presets[name]
		infos = append(infos, PresetInfo{
			Name:       name,
			UpperLeft:  FormatComplex(pl.UpperLeft),
			LowerRight: FormatComplex(pl.LowerRight),
		})
	}
	return infos
}
