// Package mcp implements the Model Context Protocol server: JSON-RPC 2.0
// over stdio, newline-delimited. It exposes the validation engine and the
// catalog lookup tools to MCP clients.
package mcp

// Message represents a JSON-RPC 2.0 message
type Message struct {
	Jsonrpc string      `json:"jsonrpc"`
	Id      interface{} `json:"id,omitempty"`
	Method  string      `json:"method,omitempty"`
	Params  interface{} `json:"params,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface
func (e *RPCError) Error() string {
	return e.Message
}

// Standard JSON-RPC error codes
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// NewErrorMessage creates a new error response message
func NewErrorMessage(id interface{}, code int, message string, data interface{}) *Message {
	return &Message{
		Jsonrpc: "2.0",
		Id:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// NewResultMessage creates a new result response message
func NewResultMessage(id interface{}, result interface{}) *Message {
	return &Message{
		Jsonrpc: "2.0",
		Id:      id,
		Result:  result,
	}
}

// IsRequest checks if the message is a request
func (m *Message) IsRequest() bool {
	return m.Method != "" && m.Id != nil
}

// IsNotification checks if the message is a notification
func (m *Message) IsNotification() bool {
	return m.Method != "" && m.Id == nil
}
