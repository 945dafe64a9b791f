package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandel_gray"
)

// webServer creates the http server serving renders as PNG, the preset list
// and the websocket endpoint. If cfg.staticDir is set, its files are served at /.
func webServer(cfg config, ip mandel.ImgProvider) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /render.png", renderHandler(ip))
	mux.HandleFunc("GET /presets", presetsHandler)
	mux.HandleFunc("/ws", websocketHandler(ip))
	if cfg.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.staticDir)))
	}

	return &http.Server{
		Addr:              cfg.addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.readHeaderTimeout,
	}
}

// renderHandler serves /render.png?size=WxH&ul=re,im&lr=re,im or /render.png?size=WxH&preset=name
func renderHandler(ip mandel.ImgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := mandel.RenderRequest{
			Size:       q.Get("size"),
			UpperLeft:  q.Get("ul"),
			LowerRight: q.Get("lr"),
			Preset:     q.Get("preset"),
		}

		img, err := ip.GetImage(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(img); err != nil {
			log.Printf("write png to %s: %v", r.RemoteAddr, err)
		}
	}
}

func presetsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mandel.Presets()); err != nil {
		log.Printf("encode presets: %v", err)
	}
}

// websocketHandler serves render requests over a websocket connection.
// Every JSON text message is a mandel.RenderRequest. It is answered with a binary
// message holding the PNG, or with a mandel.RenderReply text message on failure.
func websocketHandler(ip mandel.ImgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("websocket client connected: %s", r.RemoteAddr)
		ctx := r.Context()

		for {
			var req mandel.RenderRequest
			if err := wsjson.Read(ctx, c, &req); err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					log.Printf("websocket client left: %s", r.RemoteAddr)
				default:
					log.Printf("websocket read from %s: %v", r.RemoteAddr, err)
				}
				return
			}

			img, err := ip.GetImage(ctx, req)
			if err != nil {
				if err := wsjson.Write(ctx, c, mandel.RenderReply{Error: err.Error()}); err != nil {
					log.Printf("websocket write to %s: %v", r.RemoteAddr, err)
					return
				}
				continue
			}

			if err := c.Write(ctx, websocket.MessageBinary, img); err != nil {
				log.Printf("websocket write to %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, mandel.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, mandel.ErrBadSize),
		errors.Is(err, mandel.ErrBadPoint),
		errors.Is(err, mandel.ErrUnknownPreset):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
