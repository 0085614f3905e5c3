package ingestion

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
)

// Submitter accepts a source for background ingestion and returns its process ID.
type Submitter interface {
	Submit(src io.ReadCloser) string
}

type Service struct {
	submitter      Submitter
	spoolDir       string
	maxUploadBytes int64
}

func NewService(submitter Submitter, spoolDir string, maxUploadSizeMB int) *Service {
	if submitter == nil {
		panic("ingestion: submitter must not be nil")
	}
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = 64
	}
	if spoolDir == "" {
		spoolDir = os.TempDir()
	}
	return &Service{
		submitter:      submitter,
		spoolDir:       spoolDir,
		maxUploadBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/rewards/batch", s.UploadHandler)
}
