// Package asset handles embedded cover-art payloads: decoding the
// self-describing data-URI form clients upload in and deriving the
// storage filename for the decoded bytes.
package asset

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookclub/internal/domain"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB decoded

// maxEncodedSize is the longest base64 payload that can still decode to
// within maxImageSize; longer input is rejected before decoding.
const maxEncodedSize = maxImageSize/3*4 + 4

// Image is a decoded embedded image.
type Image struct {
	ContentType string
	Data        []byte
}

// extensions maps accepted image MIME types to storage file extensions.
var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodeDataURI parses a payload of the form
// data:<mime-type>;base64,<payload> into its MIME type and raw bytes.
// Anything not matching that shape, a non-image MIME type, or an
// oversized image is rejected as an invalid argument.
func DecodeDataURI(s string) (*Image, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover image must be a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover data URI has no payload")
	}

	contentType, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover data URI must be base64-encoded")
	}

	if _, ok := extensions[contentType]; !ok {
		return nil, domain.NewError(domain.CodeInvalidArgument, fmt.Sprintf("Unsupported cover image type %q", contentType))
	}

	if len(payload) > maxEncodedSize {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover image exceeds 10MB limit")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover payload is not valid base64")
	}
	if len(data) > maxImageSize {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Cover image exceeds 10MB limit")
	}

	return &Image{ContentType: contentType, Data: data}, nil
}

// CoverKey derives the object-store key for a book cover from the book
// title and the image's content type. Titles are slugified so the key
// is URL-safe; the random suffix keeps covers of identically-slugged
// titles from overwriting each other.
func CoverKey(title, contentType string) string {
	return "covers/" + slugify(title) + "-" + uuid.NewString()[:8] + "." + extensions[contentType]
}

// slugify lowercases the title and collapses anything outside [a-z0-9]
// into single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
