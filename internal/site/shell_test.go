package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShellHasEveryRegion(t *testing.T) {
	page, err := NewShell("", nil).Page()
	require.NoError(t, err)

	for _, id := range []string{
		"hero-title", "hero-subtitle", "hero-slides",
		"about-heading", "about-description", "about-cta", "about-image",
		"announcement-list", "announcements-more",
		"products-heading", "products-subheading", "product-slides",
		"quotes-list",
		"menu-heading", "menu-subheading", "menu-sections", "menu-cta",
		"events-heading", "events-subheading", "events-list",
		"contact-heading", "contact-subheading", "contact-address",
		"contact-phone", "contact-email", "contact-website", "contact-button",
		"announcementModal", "announcementModalLabel", "announcementModalDate",
		"announcementModalBody", "announcementModalImage",
		"announcementModalAttachments", "announcementModalAttachmentList",
	} {
		assert.Equal(t, 1, page.ByID(id).Length(), "missing #%s", id)
	}
	for _, id := range []string{
		"hero-slide-template", "quote-template", "menu-section-template",
		"menu-item-template", "event-card-template",
	} {
		_, ok := page.Template(id)
		assert.True(t, ok, "missing template %s", id)
	}
}

func TestShellReadsAndCachesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ShellFile)
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1 id="hero-title">v1</h1></body></html>`), 0o644))

	s := NewShell(dir, nil)
	page, err := s.Page()
	require.NoError(t, err)
	assert.Equal(t, "v1", page.ByID("hero-title").Text())

	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1 id="hero-title">v2</h1></body></html>`), 0o644))
	page, err = s.Page()
	require.NoError(t, err)
	assert.Equal(t, "v1", page.ByID("hero-title").Text(), "served from cache")

	s.Invalidate()
	page, err = s.Page()
	require.NoError(t, err)
	assert.Equal(t, "v2", page.ByID("hero-title").Text())
}

func TestShellFallsBackToDefault(t *testing.T) {
	data, err := NewShell(t.TempDir(), nil).Bytes()
	require.NoError(t, err)
	assert.Equal(t, DefaultShell, string(data))
}

func TestShellWatchInvalidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ShellFile)
	require.NoError(t, os.WriteFile(path, []byte(`<p>v1</p>`), 0o644))

	s := NewShell(dir, nil)
	_, err := s.Bytes()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Rewrite until the watcher has picked up a change.
	assert.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(`<p>v2</p>`), 0o644); err != nil {
			return false
		}
		data, err := s.Bytes()
		return err == nil && string(data) == `<p>v2</p>`
	}, 5*time.Second, 50*time.Millisecond)
}
