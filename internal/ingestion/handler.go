package ingestion

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	httperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	uploadField = "file"

	msgMissingUpload  = "Multipart field \"file\" is required"
	msgUploadTooLarge = "Upload exceeds maximum allowed size"
	msgSpoolFailed    = "Failed to store upload"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// UploadHandler handles POST /rewards/batch.
//
// The upload is copied to a spool file before responding: multipart temp
// files are removed when the request ends, while ingestion runs afterwards.
func (s *Service) UploadHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)

	src, size, err := s.spoolUpload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	processID := s.submitter.Submit(src)
	slog.Info("Accepted rewards batch",
		"process_id", processID,
		"upload_size", size,
	)

	c.JSON(http.StatusAccepted, v1.BatchAccepted{ProcessID: processID})
}

func (s *Service) spoolUpload(c *gin.Context) (*spoolFile, int64, *ingestionError) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		if isTooLarge(err) {
			slog.Warn("Upload exceeds maximum size", "max", s.maxUploadBytes)
			return nil, 0, &ingestionError{
				statusCode: http.StatusRequestEntityTooLarge,
				errorType:  httperr.HttpUploadTooLargeError,
				message:    msgUploadTooLarge,
				details: map[string]interface{}{
					"max_size_mb": s.maxUploadBytes / (1024 * 1024),
				},
			}
		}
		slog.Warn("Upload missing file field", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpMissingUploadError,
			message:    msgMissingUpload,
		}
	}

	upload, err := header.Open()
	if err != nil {
		slog.Error("Failed to open upload", "error", err)
		return nil, 0, spoolError()
	}
	defer upload.Close()

	tmp, err := os.CreateTemp(s.spoolDir, "rewards-batch-*.csv")
	if err != nil {
		slog.Error("Failed to create spool file", "dir", s.spoolDir, "error", err)
		return nil, 0, spoolError()
	}
	spooled := &spoolFile{File: tmp}

	size, err := io.Copy(tmp, upload)
	if err == nil {
		_, err = tmp.Seek(0, io.SeekStart)
	}
	if err != nil {
		slog.Error("Failed to spool upload", "file", tmp.Name(), "error", err)
		_ = spooled.Close()
		return nil, 0, spoolError()
	}

	return spooled, size, nil
}

func spoolError() *ingestionError {
	return &ingestionError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    msgSpoolFailed,
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// spoolFile removes itself from disk on Close.
type spoolFile struct {
	*os.File
}

func (f *spoolFile) Close() error {
	closeErr := f.File.Close()
	if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return closeErr
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
