package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize caps image uploads at 5 MB.
const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// IsAllowedImageType reports whether the uploaded MIME type is an accepted
// image format.
func IsAllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// SaveUploadedImage writes an uploaded image under destDir with a randomized
// filename and returns the filename.
func SaveUploadedImage(file *multipart.FileHeader, destDir string) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes", file.Size)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored filename to its public URL.
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
