package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/api/dto"
	"github.com/smallbizniz/support-portal/internal/storage"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// FilesHandler issues presigned attachment URLs. store is nil when object
// storage is not configured, in which case both endpoints answer 503.
type FilesHandler struct {
	store storage.ObjectStore
}

// NewFilesHandler constructs handler.
func NewFilesHandler(store storage.ObjectStore) *FilesHandler {
	return &FilesHandler{store: store}
}

// Upload POST /api/upload.
func (h *FilesHandler) Upload(c *fiber.Ctx) error {
	if h.store == nil {
		return apperrors.NewDependencyUnavailable("object storage")
	}
	var req dto.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	req.FileName = strings.TrimSpace(req.FileName)
	if req.FileName == "" || req.FileType == "" || req.FileSize <= 0 {
		return apperrors.NewValidationError("fileName, fileType, fileSize required", nil)
	}

	upload, err := h.store.PresignUpload(c.Context(), req.FileName, req.FileType, req.FileSize)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UploadResponse{PresignedURL: upload.URL, S3Key: upload.Key}})
}

// Download GET /api/download?key=.
func (h *FilesHandler) Download(c *fiber.Ctx) error {
	if h.store == nil {
		return apperrors.NewDependencyUnavailable("object storage")
	}
	key := c.Query("key")
	if key == "" {
		return apperrors.NewValidationError("key required", nil)
	}

	url, err := h.store.PresignDownload(c.Context(), key)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DownloadResponse{URL: url}})
}
