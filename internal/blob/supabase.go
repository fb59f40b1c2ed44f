package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseStore uploads objects to a Supabase Storage bucket.
type SupabaseStore struct {
	projectURL string
	serviceKey string
	bucket     string
	client     *http.Client
}

// NewSupabaseStore creates a store for bucket in the project at
// projectURL, authenticated with the service role key.
func NewSupabaseStore(projectURL, serviceKey, bucket string, client *http.Client) *SupabaseStore {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SupabaseStore{
		projectURL: strings.TrimRight(projectURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     client,
	}
}

// Put uploads data under key and returns its public URL. An existing object
// with the same key is replaced.
func (s *SupabaseStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	escaped := escapeKey(key)

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, escaped)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.projectURL, s.bucket, escaped), nil
}

// Delete removes the object behind a public URL returned by Put.
func (s *SupabaseStore) Delete(ctx context.Context, objectURL string) error {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.projectURL, s.bucket)
	key, err := unescapeKey(strings.TrimPrefix(objectURL, prefix), objectURL)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, escapeKey(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// unescapeKey reverses escapeKey for the path part of a URL this package
// produced. rawURL is only used in errors.
func unescapeKey(escaped, rawURL string) (string, error) {
	if escaped == rawURL {
		return "", fmt.Errorf("%w: %q is not from this store", ErrInvalidKey, rawURL)
	}
	parts := strings.Split(escaped, "/")
	for i, p := range parts {
		part, err := url.PathUnescape(p)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, rawURL)
		}
		parts[i] = part
	}
	key := strings.Join(parts, "/")
	if err := checkKey(key); err != nil {
		return "", err
	}
	return key, nil
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
