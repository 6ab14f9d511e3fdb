package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/buildmat/pkg/content"
)

func TestExtensionForMIMEType(t *testing.T) {
	tests := []struct {
		mimeType string
		expected string
	}{
		{mimeType: "image/jpeg", expected: ".jpg"},
		{mimeType: "image/jpg", expected: ".jpg"},
		{mimeType: "IMAGE/PNG", expected: ".png"},
		{mimeType: "image/webp", expected: ".webp"},
		{mimeType: "image/png; charset=binary", expected: ".png"},
		{mimeType: " image/webp ", expected: ".webp"},
		{mimeType: "image/x-unknown", expected: ""},
		{mimeType: "text/html", expected: ""},
		{mimeType: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.expected, content.ExtensionForMIMEType(tt.mimeType))
		})
	}
}
