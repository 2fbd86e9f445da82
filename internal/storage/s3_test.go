package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampDownloadTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{"zero falls back to max", 0, MaxDownloadTTL},
		{"negative falls back to max", -time.Hour, MaxDownloadTTL},
		{"within bounds kept", time.Hour, time.Hour},
		{"exactly max kept", MaxDownloadTTL, MaxDownloadTTL},
		{"beyond max clamped", 48 * time.Hour, MaxDownloadTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDownloadTTL(tt.ttl))
		})
	}
}

func TestNewUploadKey(t *testing.T) {
	key := NewUploadKey()
	assert.True(t, strings.HasPrefix(key, "uploads/"))

	parts := strings.Split(key, "/")
	assert.Len(t, parts, 4)

	// Keys carry a random suffix so two uploads never collide.
	assert.NotEqual(t, key, NewUploadKey())
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := New(context.Background(), Config{Endpoint: "http://localhost:9000", Bucket: "media"})
	assert.Error(t, err)
}
