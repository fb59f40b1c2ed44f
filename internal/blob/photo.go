package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// DefaultMaxDimension bounds the longer side of a stored photo.
	DefaultMaxDimension = 1280

	// MaxPhotoBytes bounds an uploaded photo before decoding.
	MaxPhotoBytes = 10 << 20

	// MaxPhotoPixels bounds the decoded size declared by the image header.
	// Compressed formats can declare far more pixels than MaxPhotoBytes.
	MaxPhotoPixels = 40_000_000

	jpegQuality = 85
)

// ErrInvalidPhoto is returned for uploads that are not a decodable image.
var ErrInvalidPhoto = errors.New("photo is not a supported image")

// PhotoUploader normalizes check-in photos to bounded JPEGs and stores
// them.
type PhotoUploader struct {
	store  Store
	maxDim int
	now    func() time.Time
}

// NewPhotoUploader creates an uploader over store. Photos larger than
// maxDim on either side are scaled down; maxDim <= 0 uses
// DefaultMaxDimension.
func NewPhotoUploader(store Store, maxDim int) *PhotoUploader {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	return &PhotoUploader{store: store, maxDim: maxDim, now: time.Now}
}

// Upload re-encodes data and stores it below folder. It returns the URL of
// the stored photo.
func (u *PhotoUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	if len(data) > MaxPhotoBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrInvalidPhoto, len(data), MaxPhotoBytes)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPhotoPixels {
		return "", fmt.Errorf("%w: %dx%d exceeds the %d pixel limit", ErrInvalidPhoto, cfg.Width, cfg.Height, MaxPhotoPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > u.maxDim || bounds.Dy() > u.maxDim {
		img = imaging.Fit(img, u.maxDim, u.maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}

	key := fmt.Sprintf("%s/%s-%s.jpg", folder, u.now().UTC().Format("20060102"), uuid.New().String())
	url, err := u.store.Put(ctx, key, "image/jpeg", buf.Bytes())
	if err != nil {
		return "", err
	}
	return url, nil
}

// Discard deletes a photo returned by Upload that ended up unused.
func (u *PhotoUploader) Discard(ctx context.Context, url string) error {
	return u.store.Delete(ctx, url)
}
