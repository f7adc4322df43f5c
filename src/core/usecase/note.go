package usecase

import (
	"fmt"
	"log/slog"
	"os"

	"lessonbox/src/core/domain"
	"lessonbox/src/infra/logger"
)

// NoteService writes and reads the single plain-text note file.
type NoteService struct {
	log *slog.Logger
}

func NewNoteService(log *slog.Logger) *NoteService {
	return &NoteService{log: log}
}

// Write stores domain.NoteContent at path. The file is closed on every exit
// path; a close error is returned when the write itself succeeded. Every
// failure, including a missing directory, is KindIOFailure.
func (s *NoteService) Write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.NewIOError("open note "+path), err)
	}
	defer func() {
		cerr := f.Close()
		logger.Debug(s.log, "note file closed", "path", path)
		if err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", domain.NewIOError("close note "+path), cerr)
		}
	}()

	if _, err := f.WriteString(domain.NoteContent); err != nil {
		return fmt.Errorf("%w: %w", domain.NewIOError("write note "+path), err)
	}
	return nil
}

// Read returns the note at path. A missing file fails with KindNotFound.
func (s *NoteService) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note %s: %w", path, err)
	}
	return string(data), nil
}
