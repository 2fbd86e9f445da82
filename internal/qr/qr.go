// Package qr renders member-card QR codes. The payload is the member's
// opaque identifier, never personal data; scanners resolve it through the
// API.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// CardSize is the pixel width of a rendered member card code.
const CardSize = 256

// payloadPrefix lets scanners distinguish member cards from arbitrary codes.
const payloadPrefix = "irm-member:"

// MemberCard encodes a member identifier as a PNG QR code.
func MemberCard(identifier string) ([]byte, error) {
	if identifier == "" {
		return nil, fmt.Errorf("qr: identifier is required")
	}
	return qrcode.Encode(payloadPrefix+identifier, qrcode.Medium, CardSize)
}

// ParsePayload extracts the member identifier from a scanned payload,
// reporting whether the payload is a member card at all.
func ParsePayload(payload string) (string, bool) {
	if len(payload) <= len(payloadPrefix) || payload[:len(payloadPrefix)] != payloadPrefix {
		return "", false
	}
	return payload[len(payloadPrefix):], true
}
