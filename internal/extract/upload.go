package extract

import (
	"fmt"
	"strings"
)

// MaxUploadSize is the largest accepted document, in bytes.
const MaxUploadSize = 10 << 20 // 10 MB

// CheckUpload enforces the upload preconditions: a file must be present, its
// type must be an image or a PDF, and it must not exceed MaxUploadSize.
func CheckUpload(filename, mimeType string, size int64) error {
	if filename == "" || size == 0 {
		return fmt.Errorf("no file uploaded")
	}
	if !IsImage(mimeType) && !IsPDF(mimeType) {
		return fmt.Errorf("unsupported file type %q: only images and PDF documents are accepted", mimeType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file too large: %d bytes exceeds the %d byte limit", size, MaxUploadSize)
	}
	return nil
}

// IsImage reports whether the mime type names an image.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// IsPDF reports whether the mime type names a PDF document.
func IsPDF(mimeType string) bool {
	return mimeType == "application/pdf"
}
