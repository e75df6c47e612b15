// Package cloudinary stores files in Cloudinary via unsigned upload
// presets and fetches them back over plain HTTP.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	sdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	httpclient "resume-match/pkg/http"
)

type Client struct {
	uploadPreset string
	cld          *sdk.Cloudinary
	http         *httpclient.Client
}

// NewClient never fails: with no cloud name configured the client can
// still Fetch, and Upload reports the missing configuration.
func NewClient(cloudName, uploadPreset string) *Client {
	c := &Client{
		uploadPreset: uploadPreset,
		http:         httpclient.NewClient(60 * time.Second),
	}
	if cloudName == "" {
		return c
	}
	cld, err := sdk.NewFromParams(cloudName, "", "")
	if err != nil {
		log.Printf("[Cloudinary] client init failed: %v", err)
		return c
	}
	c.cld = cld
	return c
}

// Upload performs an unsigned raw upload and returns the secure URL of
// the stored file.
func (c *Client) Upload(ctx context.Context, data []byte, folder, publicID string) (string, error) {
	if c.cld == nil {
		return "", errors.New("cloudinary is not configured")
	}
	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		UploadPreset: c.uploadPreset,
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "raw",
		Unsigned:     api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary upload returned no secure_url")
	}
	return resp.SecureURL, nil
}

// Fetch downloads a stored file. Used both to serve match requests that
// arrive as URLs and to verify a fresh upload is reachable.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.GetContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch of %s returned status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return data, nil
}
