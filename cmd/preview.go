package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/foodee/internal/config"
	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/db"
	"github.com/ziadkadry99/foodee/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Manage the preview content document",
	Long: `A preview document takes precedence over the published content for this
site's origin until it is cleared.`,
}

var previewSetCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Stage a content document as the preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		doc, err := content.Parse(data)
		if err != nil {
			return fmt.Errorf("%s is not a valid content document: %w", args[0], err)
		}
		return withPreviewStore(cmd.Context(), func(store preview.Store) error {
			if err := store.Set(cmd.Context(), preview.Key, string(data)); err != nil {
				return fmt.Errorf("saving preview: %w", err)
			}
			fmt.Printf("Preview staged (%s)\n", strings.Join(doc.Sections(), ", "))
			return nil
		})
	},
}

var previewShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the staged preview document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreviewStore(cmd.Context(), func(store preview.Store) error {
			raw, ok, err := store.Get(cmd.Context(), preview.Key)
			if err != nil {
				return fmt.Errorf("reading preview: %w", err)
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "No preview staged.")
				return nil
			}
			fmt.Println(raw)
			return nil
		})
	},
}

var previewClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the staged preview document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreviewStore(cmd.Context(), func(store preview.Store) error {
			if err := store.Delete(cmd.Context(), preview.Key); err != nil {
				return fmt.Errorf("clearing preview: %w", err)
			}
			fmt.Println("Preview cleared.")
			return nil
		})
	},
}

// withPreviewStore opens the configured store for the duration of fn.
func withPreviewStore(ctx context.Context, fn func(preview.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	newLogger(cfg)

	switch cfg.Preview.Backend {
	case config.PreviewNone:
		return fmt.Errorf("previews are disabled (preview.backend is %q)", cfg.Preview.Backend)
	case config.PreviewMemory:
		return fmt.Errorf("the memory preview backend only lives inside a running server")
	}

	var database *db.DB
	if cfg.Preview.Backend != config.PreviewRedis {
		database, err = openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	store, closeStore, err := openPreviewStore(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

func init() {
	previewCmd.AddCommand(previewSetCmd, previewShowCmd, previewClearCmd)
	rootCmd.AddCommand(previewCmd)
}
