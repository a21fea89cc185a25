package sink

import (
	"os"
	"sync"
)

// FileSink appends each line, newline-terminated, to a single file.
// There is no rotation; callers needing rotation should layer it in
// the writer they manage themselves.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileSink opens (or creates) the file at path for appending
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{file: f}, nil
}

// Write delivers one formatted log line
func (s *FileSink) Write(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return os.ErrClosed
	}
	if _, err := s.file.WriteString(message); err != nil {
		return err
	}
	_, err := s.file.Write(newline)
	return err
}

// Close closes the underlying file. Writes after Close fail with
// os.ErrClosed.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
