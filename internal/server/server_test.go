package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if resp == nil {
		t.Fatal("initialize should produce a response")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result type: got %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("missing serverInfo")
	}
	if info["name"] != "layers-kernel" {
		t.Errorf("server name: got %v", info["name"])
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocol version: got %v", result["protocolVersion"])
	}
}

func TestHandleRequest_InitializedNotification(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Errorf("notification should get no response, got %+v", resp)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result type: got %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools type: got %T", result["tools"])
	}
	if len(tools) == 0 {
		t.Error("no tools listed")
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 3, Method: "ping"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 4, Method: "bogus/method"})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code: got %d, want -32601", resp.Error.Code)
	}
}

// TestRun_EndToEnd drives the server through its real stdio loop: newline-
// delimited requests in, newline-delimited responses out.
func TestRun_EndToEnd(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``, // blank lines are skipped
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"layer_bounds","arguments":{"layer":{"type":"rectangle","x":10,"y":20,"width":100,"height":50}}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	s := New(strings.NewReader(input), &out)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []MCPResponse
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}

	// Three requests carrying ids; the notification gets nothing.
	if len(responses) != 3 {
		t.Fatalf("response count: got %d, want 3", len(responses))
	}
	for i, resp := range responses {
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error %+v", i, resp.Error)
		}
	}
	if responses[1].ID != float64(2) {
		t.Errorf("second response id: got %v, want 2", responses[1].ID)
	}
}

func TestRun_MalformedLineIsSkipped(t *testing.T) {
	input := "this is not json\n" +
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"

	var out bytes.Buffer
	s := New(strings.NewReader(input), &out)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var resp MCPResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != nil {
		t.Errorf("ping after a bad line failed: %+v", resp.Error)
	}
}
