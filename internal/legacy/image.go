package legacy

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ImageKind tags the variants of a legacy image field.
type ImageKind int

const (
	// ImageNone means no image was attached.
	ImageNone ImageKind = iota
	// ImageRemote is a pointer to an already-hosted object.
	ImageRemote
	// ImageEmbedded is an image carried inline as a base64 data: URI.
	ImageEmbedded
)

// ImageRef is the parsed form of a legacy image field. Callers branch on
// Kind instead of sniffing string prefixes.
type ImageRef struct {
	Kind ImageKind
	URL  string // ImageRemote
	Data []byte // ImageEmbedded
	MIME string // ImageEmbedded
}

var errNotBase64DataURI = errors.New("data URI is not base64 encoded")

// ParseImageRef classifies a legacy image field. The browser app only
// ever produced base64 data URIs (FileReader.readAsDataURL), so other
// data URI encodings are rejected.
func ParseImageRef(raw string) (ImageRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ImageRef{Kind: ImageNone}, nil
	}
	if !strings.HasPrefix(raw, "data:") {
		return ImageRef{Kind: ImageRemote, URL: raw}, nil
	}

	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return ImageRef{}, errors.New("malformed data URI")
	}
	mimeType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return ImageRef{}, errNotBase64DataURI
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageRef{}, fmt.Errorf("failed to decode embedded image: %w", err)
	}

	return ImageRef{Kind: ImageEmbedded, Data: data, MIME: mimeType}, nil
}
