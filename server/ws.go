package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// handleWebsocket answers every text message, a JSON SampleRequest, with
// one JSON SampleResponse, in order.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	logger := log.With(s.opts.logger, "remote", r.RemoteAddr)
	level.Debug(logger).Log("msg", "websocket connected")
	defer level.Debug(logger).Log("msg", "websocket closed")

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		var resp *SampleResponse
		req, err := decodeRequest(bytes.NewReader(msg))
		if err != nil {
			resp = &SampleResponse{ID: uuid.NewString(), Error: err.Error()}
		} else {
			resp, _ = s.Sample(req)
		}

		data, err := json.Marshal(resp)
		if err != nil {
			data, _ = json.Marshal(&SampleResponse{ID: resp.ID, Error: err.Error()})
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			level.Warn(logger).Log("msg", "websocket write", "err", err)
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
