package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "gatherly/internal/errors"
)

const maxUploadSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// saveUpload validates the multipart image in the named form field and
// writes it under the upload directory with a generated name. It returns
// the public URL.
func (h *Handlers) saveUpload(c *gin.Context, field, prefix string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", apperrors.Validation("Image file is required")
	}
	if file.Size > maxUploadSize {
		return "", apperrors.Validation("Image must be smaller than 5MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", apperrors.Validation("Only JPG, PNG and GIF images are allowed")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := prefix + uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// removeUploadedFile deletes a previously uploaded file by its public URL.
// Missing files are ignored; the database row is already gone or updated.
func (h *Handlers) removeUploadedFile(url *string) {
	if url == nil || !strings.HasPrefix(*url, "/uploads/") {
		return
	}

	path := filepath.Join(h.uploadDir, strings.TrimPrefix(*url, "/uploads/"))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove uploaded file", "path", path, "error", err)
	}
}

func (h *Handlers) UploadProfilePicture(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	url, err := h.saveUpload(c, "profile_picture", "profile-")
	if err != nil {
		writeError(c, err)
		return
	}

	previous, err := h.services.Users.SetProfilePicture(c.Request.Context(), userID, &url)
	if err != nil {
		h.removeUploadedFile(&url)
		writeError(c, err)
		return
	}

	h.removeUploadedFile(previous)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile picture updated successfully",
		"profile_picture": url,
	})
}

// RemoveProfilePicture clears the user's picture and deletes the file.
func (h *Handlers) RemoveProfilePicture(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	previous, err := h.services.Users.SetProfilePicture(c.Request.Context(), userID, nil)
	if err != nil {
		writeError(c, err)
		return
	}

	h.removeUploadedFile(previous)
	c.JSON(http.StatusOK, gin.H{"message": "Profile picture removed successfully"})
}

func (h *Handlers) UploadEventPhoto(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	organizerID, err := strconv.ParseInt(c.PostForm("organizer_id"), 10, 64)
	if err != nil || organizerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer_id"})
		return
	}

	url, err := h.saveUpload(c, "photo", "event-")
	if err != nil {
		writeError(c, err)
		return
	}

	previous, err := h.services.Events.SetPhoto(c.Request.Context(), eventID, organizerID, &url)
	if err != nil {
		h.removeUploadedFile(&url)
		writeError(c, err)
		return
	}

	h.removeUploadedFile(previous)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Event photo updated successfully",
		"photo_url": url,
	})
}
