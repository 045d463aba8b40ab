package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer("test-server", "0.1.0", slog.New(slog.NewTextHandler(os.Stderr, nil)))
	s.Register(Tool{
		Name:        "echo",
		Description: "répète le texte reçu",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
			var p struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(args, &p); err != nil {
				return "", err
			}
			return p.Text, nil
		},
	})
	s.Register(Tool{
		Name:        "boom",
		Description: "échoue toujours",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
			return "", errors.New("panne simulée")
		},
	})
	return s
}

// serve exécute le serveur sur les lignes données et retourne les réponses.
func serve(t *testing.T, s *Server, lines ...string) []map[string]any {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	if err := s.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("réponse illisible %q: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestInitialize(t *testing.T) {
	resps := serve(t, newTestServer(t), `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	if len(resps) != 1 {
		t.Fatalf("réponses = %d", len(resps))
	}
	result := resps[0]["result"].(map[string]any)
	if result["protocolVersion"] != ProtocolVersion {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	info := result["serverInfo"].(map[string]any)
	if info["name"] != "test-server" {
		t.Errorf("serverInfo = %v", info)
	}
}

func TestToolsList(t *testing.T) {
	resps := serve(t, newTestServer(t), `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	result := resps[0]["result"].(map[string]any)
	tools := result["tools"].([]any)
	if len(tools) != 2 {
		t.Fatalf("tools = %d", len(tools))
	}
	// l'ordre d'enregistrement doit être préservé
	first := tools[0].(map[string]any)
	if first["name"] != "echo" {
		t.Errorf("premier outil = %v", first["name"])
	}
}

func TestToolsCall(t *testing.T) {
	resps := serve(t, newTestServer(t),
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"text":"hola"}}}`)
	result := resps[0]["result"].(map[string]any)
	content := result["content"].([]any)[0].(map[string]any)
	if content["type"] != "text" || content["text"] != "hola" {
		t.Errorf("content = %v", content)
	}
	if _, hasErr := result["isError"]; hasErr {
		t.Error("isError ne doit pas être présent en cas de succès")
	}
}

func TestToolFailureReturnsTextContent(t *testing.T) {
	resps := serve(t, newTestServer(t),
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"boom","arguments":{}}}`)
	resp := resps[0]
	if resp["error"] != nil {
		t.Fatalf("un échec d'outil ne doit pas être une erreur JSON-RPC: %v", resp["error"])
	}
	result := resp["result"].(map[string]any)
	if result["isError"] != true {
		t.Error("isError doit être vrai")
	}
	content := result["content"].([]any)[0].(map[string]any)
	if !strings.Contains(content["text"].(string), "panne simulée") {
		t.Errorf("content = %v", content)
	}
}

func TestUnknownMethodAndTool(t *testing.T) {
	resps := serve(t, newTestServer(t),
		`{"jsonrpc":"2.0","id":5,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"inexistant","arguments":{}}}`)

	errObj := resps[0]["error"].(map[string]any)
	if int(errObj["code"].(float64)) != CodeMethodNotFound {
		t.Errorf("code = %v, attendu %d", errObj["code"], CodeMethodNotFound)
	}
	errObj = resps[1]["error"].(map[string]any)
	if int(errObj["code"].(float64)) != CodeInvalidParams {
		t.Errorf("code = %v, attendu %d", errObj["code"], CodeInvalidParams)
	}
}

func TestNotificationsIgnored(t *testing.T) {
	resps := serve(t, newTestServer(t),
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":7,"method":"ping"}`)
	if len(resps) != 1 {
		t.Fatalf("réponses = %d, les notifications ne doivent produire aucune réponse", len(resps))
	}
	if string(mustJSON(t, resps[0]["id"])) != "7" {
		t.Errorf("id = %v", resps[0]["id"])
	}
}

func TestParseErrorDoesNotStopServer(t *testing.T) {
	resps := serve(t, newTestServer(t),
		`ceci n'est pas du JSON`,
		`{"jsonrpc":"2.0","id":8,"method":"ping"}`)
	if len(resps) != 2 {
		t.Fatalf("réponses = %d, le serveur doit survivre à une ligne illisible", len(resps))
	}
	errObj := resps[0]["error"].(map[string]any)
	if int(errObj["code"].(float64)) != CodeParseError {
		t.Errorf("code = %v", errObj["code"])
	}
}

func TestStringIDPreserved(t *testing.T) {
	resps := serve(t, newTestServer(t), `{"jsonrpc":"2.0","id":"abc-123","method":"ping"}`)
	if resps[0]["id"] != "abc-123" {
		t.Errorf("id = %v, l'ID chaîne doit être restitué tel quel", resps[0]["id"])
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
