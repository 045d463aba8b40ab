package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// ToolHandler exécute un outil et retourne le texte à renvoyer au client.
// Une erreur ne casse jamais le protocole : elle est rendue au client comme
// contenu textuel marqué isError.
type ToolHandler func(ctx context.Context, args json.RawMessage) (string, error)

// Tool décrit un outil exposé par le serveur.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     ToolHandler
}

// Server est un serveur MCP sur stdio. Les outils sont enregistrés avant
// Serve ; l'ordre d'enregistrement est l'ordre de tools/list.
type Server struct {
	name    string
	version string
	tools   []Tool
	byName  map[string]int
	logger  *slog.Logger
}

// NewServer construit le serveur.
func NewServer(name, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		name:    name,
		version: version,
		byName:  make(map[string]int),
		logger:  logger,
	}
}

// Register ajoute un outil. Panique sur un nom en double : c'est une erreur
// de programmation, pas une condition d'exécution.
func (s *Server) Register(t Tool) {
	if _, dup := s.byName[t.Name]; dup {
		panic("mcp: outil enregistré deux fois: " + t.Name)
	}
	s.byName[t.Name] = len(s.tools)
	s.tools = append(s.tools, t)
}

// Serve traite les requêtes ligne par ligne jusqu'à la fermeture de r ou
// l'annulation du contexte. Une ligne illisible produit une réponse
// d'erreur de parsing, jamais un arrêt du serveur.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// certaines requêtes (arguments volumineux) dépassent largement la
	// taille de buffer par défaut
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("requête illisible", "error", err)
			if werr := s.write(w, newErrorResponse(nil, CodeParseError, "parse error: "+err.Error())); werr != nil {
				return werr
			}
			continue
		}

		if req.IsNotification() {
			// notifications (notifications/initialized, etc.) : aucune réponse
			s.logger.Debug("notification ignorée", "method", req.Method)
			continue
		}

		resp := s.dispatch(ctx, &req)
		if err := s.write(w, resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *Server) write(w io.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("sérialisation de la réponse: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("écriture de la réponse: %w", err)
	}
	return nil
}

// dispatch route une requête vers son traitement.
func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	s.logger.Debug("requête reçue", "method", req.Method)

	switch req.Method {
	case "initialize":
		return newResponse(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": s.name, "version": s.version},
		})

	case "tools/list":
		list := make([]map[string]any, 0, len(s.tools))
		for _, t := range s.tools {
			list = append(list, map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"inputSchema": t.InputSchema,
			})
		}
		return newResponse(req.ID, map[string]any{"tools": list})

	case "tools/call":
		return s.callTool(ctx, req)

	case "ping":
		return newResponse(req.ID, map[string]any{})

	default:
		return newErrorResponse(req.ID, CodeMethodNotFound, "méthode inconnue: "+req.Method)
	}
}

// callTool exécute l'outil demandé. L'échec d'un outil est une réponse
// textuelle marquée isError, pas une erreur JSON-RPC : le client doit
// toujours recevoir du contenu affichable.
func (s *Server) callTool(ctx context.Context, req *Request) *Response {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return newErrorResponse(req.ID, CodeInvalidParams, "paramètres invalides: "+err.Error())
	}

	idx, ok := s.byName[params.Name]
	if !ok {
		return newErrorResponse(req.ID, CodeInvalidParams, "outil inconnu: "+params.Name)
	}
	tool := s.tools[idx]
	s.logger.Info("exécution de l'outil", "tool", tool.Name)

	text, err := tool.Handler(ctx, params.Arguments)
	isError := false
	if err != nil {
		s.logger.Error("outil en échec", "tool", tool.Name, "error", err)
		text = "❌ " + err.Error()
		isError = true
	}

	result := map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	}
	if isError {
		result["isError"] = true
	}
	return newResponse(req.ID, result)
}
