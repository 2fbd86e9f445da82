package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extensions that are never acceptable for an image upload, whatever the
// declared content type says.
var forbiddenExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".so": {}, ".sh": {}, ".bash": {},
	".bat": {}, ".cmd": {}, ".com": {}, ".scr": {}, ".ps1": {},
	".php": {}, ".jsp": {}, ".asp": {}, ".aspx": {}, ".cgi": {},
}

const shellMetacharacters = ";|&$`<>!*?(){}[]'\""

// ValidateFile checks the declared metadata of an upload before a presigned
// URL is issued. It rejects on declared MIME type, byte size, and filename
// shape (path traversal, shell metacharacters, executable extensions). The
// actual bytes never pass through this process.
func ValidateFile(filename, contentType string, size int64, allowedTypes []string, maxBytes int64) error {
	if filename == "" {
		return fmt.Errorf("filename is required")
	}
	if size <= 0 {
		return fmt.Errorf("file size must be positive")
	}
	if size > maxBytes {
		return fmt.Errorf("file exceeds maximum size of %d bytes", maxBytes)
	}

	allowed := false
	for _, t := range allowedTypes {
		if strings.EqualFold(t, contentType) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("file type %q is not allowed", contentType)
	}

	if strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, "/\\") ||
		strings.ContainsAny(filename, shellMetacharacters) {
		return fmt.Errorf("filename contains forbidden characters")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, bad := forbiddenExtensions[ext]; bad {
		return fmt.Errorf("file extension %q is not allowed", ext)
	}

	return nil
}
