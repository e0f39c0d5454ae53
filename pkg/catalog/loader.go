// Copyright (c) 2025, The gtcalc Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// UserAgent is sent with remote catalog requests.
const UserAgent = "gtcalc-catalog/1.0"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Loader reads recipe catalogs from local files or http(s) URLs.
type Loader struct {
	client         *resty.Client
	validateSchema bool
	concurrency    int
}

// Option configures a Loader.
type Option func(*Loader)

// WithSchemaValidation enables validation of the raw document against the
// catalog JSON schema before decoding.
func WithSchemaValidation(enabled bool) Option {
	return func(l *Loader) {
		l.validateSchema = enabled
	}
}

// WithTimeout sets the total timeout for a remote download.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.client.SetTimeout(d)
		}
	}
}

// WithRetries sets the number of retries for failed downloads.
func WithRetries(n int) Option {
	return func(l *Loader) {
		if n >= 0 {
			l.client.SetRetryCount(n)
		}
	}
}

// WithHTTPClient replaces the resty client used for downloads.
func WithHTTPClient(c *resty.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithConcurrency bounds the number of catalogs loaded at once by LoadAll.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// NewLoader returns a Loader with defaults applied before options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: resty.New().
			SetTimeout(defaults.CatalogFetchTimeout).
			SetRetryCount(defaults.CatalogFetchRetries).
			SetRetryWaitTime(defaults.CatalogFetchRetryWait).
			SetHeader("User-Agent", UserAgent).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			}),
		concurrency: defaults.CatalogLoadConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads one catalog with a new Loader.
func Load(ctx context.Context, location string, opts ...Option) (*recipe.Catalog, error) {
	return NewLoader(opts...).Load(ctx, location)
}

// LoadAll reads several catalogs with a new Loader and merges them.
func LoadAll(ctx context.Context, locations []string, opts ...Option) (*recipe.Catalog, error) {
	return NewLoader(opts...).LoadAll(ctx, locations)
}

// Load reads the catalog at location, which is a local path or an http(s)
// URL. Gzip and zstd compressed documents are detected by extension or by
// their magic bytes.
func (l *Loader) Load(ctx context.Context, location string) (*recipe.Catalog, error) {
	start := time.Now()
	origin := "file"
	if isRemote(location) {
		origin = "http"
	}

	c, err := l.load(ctx, location)
	result := "success"
	if err != nil {
		result = "error"
	}
	catalogLoadDuration.WithLabelValues(origin, result).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	catalogRecipes.Set(float64(c.RecipeCount()))
	slog.Info("catalog loaded",
		"location", location,
		"sources", len(c.Sources),
		"recipes", c.RecipeCount(),
		"duration", time.Since(start).String())
	return c, nil
}

// LoadAll loads locations concurrently and merges their sources in argument
// order. The first failure cancels the remaining loads.
func (l *Loader) LoadAll(ctx context.Context, locations []string) (*recipe.Catalog, error) {
	if len(locations) == 0 {
		return nil, gterrors.New(gterrors.ErrCodeInvalidRequest, "no catalog locations given")
	}

	results := make([]*recipe.Catalog, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, loc := range locations {
		g.Go(func() error {
			c, err := l.Load(gctx, loc)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &recipe.Catalog{}
	merged.Merge(results...)
	if len(locations) > 1 {
		catalogRecipes.Set(float64(merged.RecipeCount()))
	}
	return merged, nil
}

func (l *Loader) load(ctx context.Context, location string) (*recipe.Catalog, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := decompress(rc, location)
	if err != nil {
		return nil, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "failed to decompress catalog", err,
			map[string]any{"location": location})
	}
	defer r.Close()

	c, err := l.decode(r)
	if err != nil {
		return nil, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "failed to decode catalog", err,
			map[string]any{"location": location})
	}
	return c, nil
}

func (l *Loader) decode(r io.Reader) (*recipe.Catalog, error) {
	var c recipe.Catalog
	if !l.validateSchema {
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, err
		}
		return &c, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !isRemote(location) {
		f, err := os.Open(expandHome(location))
		if err != nil {
			code := gterrors.ErrCodeInvalidRequest
			if os.IsNotExist(err) {
				code = gterrors.ErrCodeNotFound
			}
			return nil, gterrors.WrapWithContext(code, "failed to open catalog", err,
				map[string]any{"location": location})
		}
		return f, nil
	}

	resp, err := l.client.R().SetContext(ctx).Get(location)
	if err != nil {
		code := gterrors.ErrCodeUnavailable
		if ctx.Err() != nil {
			code = gterrors.ErrCodeTimeout
		}
		return nil, gterrors.WrapWithContext(code, "failed to fetch catalog", err,
			map[string]any{"location": location})
	}
	if resp.IsError() {
		code := gterrors.ErrCodeUnavailable
		if resp.StatusCode() == http.StatusNotFound {
			code = gterrors.ErrCodeNotFound
		}
		return nil, gterrors.NewWithContext(code, "catalog fetch returned "+resp.Status(),
			map[string]any{"location": location, "status": resp.StatusCode()})
	}

	body := resp.Body()
	catalogBytes.Add(float64(len(body)))
	slog.Debug("catalog fetched", "location", location, "bytes", len(body))
	return io.NopCloser(bytes.NewReader(body)), nil
}

// decompress wraps r in a gzip or zstd reader when the location extension or
// the leading magic bytes say so.
func decompress(r io.Reader, location string) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	switch ext := path.Ext(locationPath(location)); ext {
	case ".gz":
		return gzip.NewReader(br)
	case ".zst", ".zstd":
		return newZstdReader(br)
	}

	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return gzip.NewReader(br)
	case bytes.HasPrefix(head, zstdMagic):
		return newZstdReader(br)
	default:
		return io.NopCloser(br), nil
	}
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// locationPath strips the query from URLs so the extension can be read.
func locationPath(location string) string {
	if !isRemote(location) {
		return strings.ToLower(location)
	}
	u, err := url.Parse(location)
	if err != nil {
		return strings.ToLower(location)
	}
	return strings.ToLower(u.Path)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return home + strings.TrimPrefix(p, "~")
}
