package theme

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// AssetChecker reports whether a site asset can be served.
type AssetChecker interface {
	Check(ctx context.Context, path string) error
}

// DirChecker looks for assets under a site directory.
type DirChecker struct {
	Root string
}

// Check implements AssetChecker.
func (c DirChecker) Check(_ context.Context, path string) error {
	full := filepath.Join(c.Root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
	info, err := os.Stat(full)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", full)
	}
	return nil
}

// HTTPChecker asks the site origin for the asset with a HEAD request.
type HTTPChecker struct {
	BaseURL string
	Client  *http.Client
}

// Check implements AssetChecker.
func (c HTTPChecker) Check(ctx context.Context, path string) error {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing base url: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parsing asset path: %w", err)
	}
	target := base.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return err
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", target, resp.StatusCode)
	}
	return nil
}
