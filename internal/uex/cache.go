package uex

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"pickman/inventory-index/internal/fileutils"
	"pickman/inventory-index/internal/logging"
)

// diskCache is an http.RoundTripper that keeps successful GET responses on
// disk for the rest of the day.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	now    func() time.Time
	logger logging.Logger
}

func newDiskCache(base http.RoundTripper, dir string, logger logging.Logger) *diskCache {
	if base == nil {
		base = http.DefaultTransport
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "pickman-uex")
	}
	return &diskCache{base: base, dir: dir, now: time.Now, logger: logger}
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}

	// One key per day, so entries expire at midnight.
	key := fmt.Sprintf("%s %s %s", c.now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		c.logger.Debug("UEX cache hit", logging.F(logging.FieldEndpoint, req.URL.Path))
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("UEX request",
		logging.F(logging.FieldEndpoint, req.URL.Path),
		logging.F(logging.FieldStatus, resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.logger.WithError(err).Warn("Failed to write UEX cache entry")
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores resp and leaves its body readable for the caller.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(filepath.Join(c.dir, key), content, 0600)
}
