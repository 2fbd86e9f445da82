package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCard(t *testing.T) {
	data, err := MemberCard("3f1c9a2e-member-id")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, CardSize, img.Bounds().Dx())
	assert.Equal(t, CardSize, img.Bounds().Dy())
}

func TestMemberCard_EmptyIdentifier(t *testing.T) {
	data, err := MemberCard("")
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
		wantOK  bool
	}{
		{"member card", "irm-member:abc-123", "abc-123", true},
		{"prefix only", "irm-member:", "", false},
		{"foreign code", "https://example.com", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParsePayload(tt.payload)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
