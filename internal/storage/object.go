package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Folders under the bucket; reports are namespaced by their type.
const (
	FolderLost  = "lost"
	FolderFound = "found"
)

var ErrUnrecognizedURL = errors.New("image URL was not issued by this store")

// Client uploads and deletes objects through a Supabase-compatible
// storage API. Uploaded objects are publicly readable under a stable URL.
type Client struct {
	baseURL string
	key     string
	bucket  string
	http    *http.Client
}

func NewClient(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     serviceKey,
		bucket:  bucket,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores data under folder/ with a randomized name carrying the
// extension implied by mimeType, and returns the public URL. Name
// collisions are treated as negligible rather than checked.
func (c *Client) Upload(data []byte, mimeType, folder string) (string, error) {
	objectPath := folder + "/" + randomObjectName(mimeType)

	req, err := http.NewRequest(http.MethodPost, c.objectURL(objectPath), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload rejected (status %d): %s", resp.StatusCode, string(body))
	}

	return c.publicURL(objectPath), nil
}

// Delete removes a previously uploaded object, identified by its public
// URL. URLs not issued by this client are rejected without a network
// call.
func (c *Client) Delete(imageURL string) error {
	objectPath, err := c.objectPath(imageURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodDelete, c.objectURL(objectPath), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete rejected (status %d)", resp.StatusCode)
	}
	return nil
}

func (c *Client) objectURL(objectPath string) string {
	return c.baseURL + "/storage/v1/object/" + c.bucket + "/" + objectPath
}

func (c *Client) publicURL(objectPath string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + objectPath
}

// objectPath recovers "folder/name" from a public URL this client issued.
func (c *Client) objectPath(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", ErrUnrecognizedURL
	}
	prefix := "/storage/v1/object/public/" + c.bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", ErrUnrecognizedURL
	}
	objectPath := strings.TrimPrefix(u.Path, prefix)
	parts := strings.Split(objectPath, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ErrUnrecognizedURL
	}
	return objectPath, nil
}

func randomObjectName(mimeType string) string {
	return uuid.New().String() + extensionFor(mimeType)
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ".bin"
	}
}
