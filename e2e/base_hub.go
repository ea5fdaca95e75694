package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHubSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// Envelope is the body of every API response.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Frame is one push channel message.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHubSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HubAddr == "" {
		s.T().Skip("HUB_ADDR is not set, no running hub to test against")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *BaseHubSuite) header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends a JSON request and decodes the envelope, logging bodies when E2E_DEBUG_JSON is enabled.
func (s *BaseHubSuite) Call(name, method, path, token string, body any) (int, Envelope) {
	s.header(name)
	var payload io.Reader
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, "http://"+s.Config.HubAddr+path, payload)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\nRESPONSE:\n%s", raw, respBody)
	}
	s.T().Log(logBuilder.String())

	var envelope Envelope
	s.Require().NoError(json.Unmarshal(respBody, &envelope))
	return resp.StatusCode, envelope
}

// Dial opens a push channel connection with the token as query parameter.
func (s *BaseHubSuite) Dial(name, token string) *websocket.Conn {
	s.header(name)
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Config.HubAddr+"/ws?token="+token, nil)
	s.Require().NoError(err, "Failed to open push channel at "+s.Config.HubAddr)
	return conn
}

func (s *BaseHubSuite) Send(conn *websocket.Conn, event string, data any) {
	s.Require().NoError(conn.WriteJSON(map[string]any{"event": event, "data": data}))
}

// Expect reads frames until one named event arrives, skipping the others.
func (s *BaseHubSuite) Expect(conn *websocket.Conn, event string, match func(data json.RawMessage) bool) json.RawMessage {
	deadline := time.Now().Add(5 * time.Second)
	for {
		s.Require().NoError(conn.SetReadDeadline(deadline))
		var frame Frame
		s.Require().NoError(conn.ReadJSON(&frame), "no %s event received", event)
		if s.Config.DebugJSON {
			s.T().Logf("PUSH %s %s", frame.Event, frame.Data)
		}
		if frame.Event == event && (match == nil || match(frame.Data)) {
			return frame.Data
		}
	}
}

func (s *BaseHubSuite) Decode(raw json.RawMessage, target any) {
	s.Require().NoError(json.Unmarshal(raw, target))
}
