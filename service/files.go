package service

import (
	"os"

	"Atrium/pkg/log"

	"go.uber.org/zap"
)

var _ IFileService = (*FileService)(nil)

type IFileService interface {
	// ListDir never fails: a missing or unreadable directory yields an
	// empty list and a log entry.
	ListDir(path string) []string
}

type FileService struct{}

func (s *FileService) ListDir(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.L.Warn("directory does not exist", zap.String("path", path))
		} else {
			log.L.Error("error accessing directory", zap.String("path", path), zap.Error(err))
		}
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
