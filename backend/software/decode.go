// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	// Registered decoders behind image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/surfacefactory/backend"
)

// maxBitmapBytes caps how much encoded image data a single load will read.
const maxBitmapBytes = 64 << 20

// LoadBitmap fetches and decodes the resource at uri into a bitmap.
//
// Supported forms: "file://" URIs, "http://" and "https://" URLs, and bare
// filesystem paths. Decode failures wrap backend.ErrDecode.
func LoadBitmap(ctx context.Context, uri string) (backend.Bitmap, error) {
	r, err := openURI(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", backend.ErrDecode, uri, err)
	}
	defer func() { _ = r.Close() }()

	src, _, err := image.Decode(io.LimitReader(r, maxBitmapBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", backend.ErrDecode, uri, err)
	}
	return bitmapFromImage(src), nil
}

func openURI(ctx context.Context, uri string) (io.ReadCloser, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Bare path, or a Windows drive letter mistaken for a scheme.
		return os.Open(filepath.Clean(uri))
	}

	switch u.Scheme {
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return os.Open(filepath.Clean(path))
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
