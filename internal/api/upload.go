package api

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

// saveImage stores an uploaded image under uploadDir/subdir with a generated
// filename and returns the public URL it will be served from.
func saveImage(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir string) (string, error) {

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", fmt.Errorf("only image files are allowed")
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image exceeds the 5MB limit")
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)

	dir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/" + path.Join("uploads", subdir, filename), nil
}
