package mcp

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"

	"vtkcheck/internal/validate"
)

// ToolHandler handles one tool call and returns the payload to embed in
// the text content of the response.
type ToolHandler func(params map[string]interface{}) (interface{}, error)

// Server is the MCP server over stdio. The validator and its catalog
// index are immutable, so every request is handled without locking.
type Server struct {
	stdin     io.Reader
	stdout    io.Writer
	scanner   *bufio.Scanner
	logger    *slog.Logger
	version   string
	validator *validate.Validator
	tools     map[string]ToolHandler
}

// NewServer creates an MCP server bound to os.Stdin/os.Stdout.
func NewServer(version string, validator *validate.Validator, logger *slog.Logger) *Server {
	s := &Server{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		logger:    logger,
		version:   version,
		validator: validator,
		tools:     make(map[string]ToolHandler),
	}
	s.registerTools()
	return s
}

// SetStdin overrides the input stream. Used by tests.
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil
}

// SetStdout overrides the output stream. Used by tests.
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}

// Start runs the message loop until stdin closes.
func (s *Server) Start() error {
	s.logger.Info("MCP server started",
		"version", s.version,
		"classes", s.validator.Index().NumClasses(),
	)

	for {
		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("Client closed connection")
				return nil
			}
			// A malformed line is a protocol error, not a reason to die.
			s.logger.Warn("Failed to read message", "error", err.Error())
			if werr := s.writeMessage(NewErrorMessage(nil, ParseError, err.Error(), nil)); werr != nil {
				return werr
			}
			continue
		}

		response := s.handleMessage(msg)
		if response == nil {
			continue
		}
		if err := s.writeMessage(response); err != nil {
			return err
		}
	}
}
