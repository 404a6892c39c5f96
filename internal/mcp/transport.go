package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MaxMessageSize is the maximum size for a single MCP message (1MB).
// Large enough for full validation reports on long snippets.
const MaxMessageSize = 1024 * 1024

// readMessage reads one newline-delimited JSON-RPC message from stdin.
func (s *Server) readMessage() (*Message, error) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.stdin)
		s.scanner.Buffer(make([]byte, MaxMessageSize), MaxMessageSize)
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		return nil, io.EOF
	}

	line := s.scanner.Text()
	s.logger.Debug("Received message", "raw", line)

	var msg Message
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		return nil, fmt.Errorf("error parsing JSON-RPC message: %w", err)
	}

	return &msg, nil
}

// writeMessage writes one JSON-RPC message to stdout.
func (s *Server) writeMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling JSON-RPC message: %w", err)
	}

	s.logger.Debug("Sending message", "raw", string(data))

	if _, err := fmt.Fprintf(s.stdout, "%s\n", data); err != nil {
		return fmt.Errorf("error writing to stdout: %w", err)
	}

	return nil
}
