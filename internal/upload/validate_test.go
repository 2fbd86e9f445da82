package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png", "image/webp"}
	const maxBytes = 5 * 1024 * 1024

	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		wantErr     bool
	}{
		{
			name:        "valid jpeg",
			filename:    "photo.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     false,
		},
		{
			name:        "content type matched case-insensitively",
			filename:    "photo.png",
			contentType: "IMAGE/PNG",
			size:        1024,
			wantErr:     false,
		},
		{
			name:        "empty filename",
			filename:    "",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "zero size",
			filename:    "photo.jpg",
			contentType: "image/jpeg",
			size:        0,
			wantErr:     true,
		},
		{
			name:        "oversize",
			filename:    "photo.jpg",
			contentType: "image/jpeg",
			size:        maxBytes + 1,
			wantErr:     true,
		},
		{
			name:        "disallowed content type",
			filename:    "doc.pdf",
			contentType: "application/pdf",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "path traversal",
			filename:    "../../etc/passwd.png",
			contentType: "image/png",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "path separator",
			filename:    "dir/photo.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "shell metacharacters",
			filename:    "photo;rm.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "executable extension",
			filename:    "photo.exe",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     true,
		},
		{
			name:        "executable extension uppercase",
			filename:    "photo.EXE",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.filename, tt.contentType, tt.size, allowed, maxBytes)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
