// Package mcp implémente le côté serveur du Model Context Protocol sur
// stdio : des messages JSON-RPC 2.0 délimités par des sauts de ligne, stdin
// pour les requêtes, stdout pour les réponses. Tout le diagnostic passe par
// stderr, stdout étant réservé au protocole.
package mcp

import (
	"encoding/json"
	"fmt"
)

// jsonrpcVersion est la version JSON-RPC utilisée par MCP.
const jsonrpcVersion = "2.0"

// ProtocolVersion est la révision du protocole MCP annoncée à l'initialize.
const ProtocolVersion = "2024-11-05"

// Codes d'erreur JSON-RPC 2.0.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request est une requête JSON-RPC 2.0 entrante. L'ID reste un
// json.RawMessage : le client peut envoyer un nombre ou une chaîne, et la
// réponse doit le restituer tel quel.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification indique si la requête est une notification (pas d'ID, donc
// pas de réponse attendue).
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// Response est une réponse JSON-RPC 2.0. Exactement un de Result ou Error
// est non nil dans une réponse bien formée.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError est l'objet erreur JSON-RPC 2.0.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implémente error.
func (e *RPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

func newResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: jsonrpcVersion, ID: id, Result: result}
}

func newErrorResponse(id json.RawMessage, code int, message string) *Response {
	if id == nil {
		id = json.RawMessage("null")
	}
	return &Response{JSONRPC: jsonrpcVersion, ID: id, Error: &RPCError{Code: code, Message: message}}
}
