package arxiv

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	cacheEnvVar       = "ARXTAB_CACHE_DIR"
	cacheSubdir       = "arxtab/pdfs"
	cacheTTL          = 24 * time.Hour
	partialSuffix     = ".part"
	metaSuffix        = ".meta"
	defaultPDFTimeout = 90 * time.Second
)

// pdfCache keeps downloaded PDFs on disk, keyed by arXiv identifier. Fresh
// files are reused within the TTL; stale files are revalidated with
// conditional requests before being re-downloaded.
type pdfCache struct {
	dir    string
	client *http.Client
}

type pdfCacheMeta struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"lastModified"`
	CachedAt     time.Time `json:"cachedAt"`
}

func newPDFCache(client *http.Client) (*pdfCache, error) {
	dir := os.Getenv(cacheEnvVar)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = filepath.Join(os.TempDir(), "arxtab-cache")
		}
		dir = filepath.Join(base, cacheSubdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: defaultPDFTimeout}
	}
	return &pdfCache{dir: dir, client: client}, nil
}

// Fetch returns the local path of the PDF behind pdfURL, downloading it if
// the cache has no fresh copy. A stale copy is still returned when the
// refresh attempt fails.
func (c *pdfCache) Fetch(ctx context.Context, pdfURL string) (string, error) {
	pdfPath := filepath.Join(c.dir, cacheKey(pdfURL)+".pdf")
	metaPath := filepath.Join(c.dir, cacheKey(pdfURL)+metaSuffix)

	if info, err := os.Stat(pdfPath); err == nil && info.Size() > 0 && time.Since(info.ModTime()) < cacheTTL {
		return pdfPath, nil
	}

	meta, _ := readMeta(metaPath)
	haveCopy := false
	if info, err := os.Stat(pdfPath); err == nil && info.Size() > 0 {
		haveCopy = true
	}

	path, err := c.download(ctx, pdfURL, pdfPath, metaPath, meta, haveCopy)
	if err == nil {
		return path, nil
	}
	if haveCopy {
		return pdfPath, nil
	}
	return "", err
}

func (c *pdfCache) download(ctx context.Context, pdfURL, pdfPath, metaPath string, meta pdfCacheMeta, haveCopy bool) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", err
	}
	if haveCopy {
		if meta.ETag != "" {
			req.Header.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			req.Header.Set("If-Modified-Since", meta.LastModified)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		meta.CachedAt = time.Now().UTC()
		writeMeta(metaPath, meta)
		// Refresh the mtime so the TTL check passes again.
		now := time.Now()
		_ = os.Chtimes(pdfPath, now, now)
		return pdfPath, nil
	case http.StatusOK:
		return c.saveBody(resp, pdfPath, metaPath)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pdf download failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}
}

func (c *pdfCache) saveBody(resp *http.Response, pdfPath, metaPath string) (string, error) {
	partialPath := pdfPath + partialSuffix
	file, err := os.OpenFile(partialPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(partialPath, pdfPath); err != nil {
		return "", err
	}

	meta := pdfCacheMeta{
		URL:          resp.Request.URL.String(),
		ETag:         resp.Header.Get("Etag"),
		LastModified: resp.Header.Get("Last-Modified"),
		CachedAt:     time.Now().UTC(),
	}
	if err := writeMeta(metaPath, meta); err != nil {
		return "", err
	}
	return pdfPath, nil
}

func cacheKey(pdfURL string) string {
	if id := extractIdentifier(pdfURL); id != "" {
		return strings.NewReplacer("/", "-", ":", "-", "..", "-").Replace(id)
	}
	sum := sha1.Sum([]byte(pdfURL))
	return hex.EncodeToString(sum[:])
}

func readMeta(path string) (pdfCacheMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pdfCacheMeta{}, err
	}
	var meta pdfCacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return pdfCacheMeta{}, err
	}
	return meta, nil
}

func writeMeta(path string, meta pdfCacheMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
