package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ServerCapabilities represents the capabilities exposed by the server
type ServerCapabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability represents the tools capability
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ServerInfo identifies the server to the client
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult represents the result of the initialize request
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
}

// TextContent is the single content block type this server emits.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallToolResult wraps tool output for the MCP content envelope.
type CallToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// handleMessage processes an incoming message and returns a response, or
// nil when none is required (notifications).
func (s *Server) handleMessage(msg *Message) *Message {
	if msg.IsRequest() {
		return s.handleRequest(msg)
	}
	if msg.IsNotification() {
		s.handleNotification(msg)
		return nil
	}
	return NewErrorMessage(msg.Id, InvalidRequest, "Invalid message: not a request or notification", nil)
}

func (s *Server) handleRequest(msg *Message) *Message {
	s.logger.Debug("Handling request", "method", msg.Method, "id", msg.Id)

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "tools/list":
		return s.handleListTools(msg)
	case "tools/call":
		return s.handleCallTool(msg)
	default:
		return NewErrorMessage(msg.Id, MethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method), nil)
	}
}

func (s *Server) handleNotification(msg *Message) {
	switch msg.Method {
	case "notifications/initialized":
		s.logger.Info("Client initialized")
	default:
		s.logger.Debug("Unknown notification", "method", msg.Method)
	}
}

func (s *Server) handleInitialize(msg *Message) *Message {
	params, _ := msg.Params.(map[string]interface{})
	s.logger.Info("MCP server initializing", "clientInfo", params["clientInfo"])

	result := &InitializeResult{
		ProtocolVersion: "2024-11-05",
		Capabilities: ServerCapabilities{
			Tools: &ToolsCapability{ListChanged: false},
		},
		ServerInfo: ServerInfo{
			Name:    "vtkcheck",
			Version: s.version,
		},
	}
	return NewResultMessage(msg.Id, result)
}

func (s *Server) handleListTools(msg *Message) *Message {
	return NewResultMessage(msg.Id, map[string]interface{}{
		"tools": s.toolDefinitions(),
	})
}

func (s *Server) handleCallTool(msg *Message) *Message {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		return NewErrorMessage(msg.Id, InvalidParams, "Invalid params: expected object", nil)
	}

	name, _ := params["name"].(string)
	args, _ := params["arguments"].(map[string]interface{})
	if args == nil {
		args = make(map[string]interface{})
	}

	handler, ok := s.tools[name]
	if !ok {
		return NewErrorMessage(msg.Id, MethodNotFound, fmt.Sprintf("Unknown tool: %s", name), nil)
	}

	traceId := uuid.NewString()
	s.logger.Info("Tool call", "tool", name, "traceId", traceId)

	data, err := handler(args)
	if err != nil {
		s.logger.Warn("Tool call failed", "tool", name, "traceId", traceId, "error", err.Error())
		return NewResultMessage(msg.Id, &CallToolResult{
			Content: []TextContent{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
	}

	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return NewErrorMessage(msg.Id, InternalError, err.Error(), nil)
	}

	return NewResultMessage(msg.Id, &CallToolResult{
		Content: []TextContent{{Type: "text", Text: string(text)}},
	})
}
