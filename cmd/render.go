package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/foodee/internal/site"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the site once and write the resulting page",
	Long: `Resolves the content document (preview first, then published), renders it
into the page shell and writes the page. A content failure leaves the shell
untouched; the theme script is added either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		ctx := cmd.Context()
		p, err := buildPipeline(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer p.Close()

		page, err := p.shell.Page()
		if err != nil {
			return err
		}
		out := p.site.Run(ctx, page)

		var buf bytes.Buffer
		if err := page.Render(&buf); err != nil {
			return fmt.Errorf("serializing page: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(renderOut), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := atomic.WriteFile(renderOut, &buf); err != nil {
			return fmt.Errorf("writing %s: %w", renderOut, err)
		}

		logRun(p, out)
		fmt.Fprintf(os.Stderr, "Wrote %s (%s)\n", renderOut, out.State)
		return nil
	},
}

// logRun summarises one run at info level.
func logRun(p *pipeline, out site.Outcome) {
	attrs := []any{"state", out.State.String(), "duration", out.Duration}
	if out.Rendered() {
		attrs = append(attrs, "source", out.Result.Source, "preview", out.Result.Preview,
			"announcements", len(out.Announcements))
	}
	if out.ContentErr != nil {
		attrs = append(attrs, "content_error", out.ContentErr)
	}
	if out.ThemeErr != nil {
		attrs = append(attrs, "theme_error", out.ThemeErr)
	}
	p.logger.Info("page rendered", attrs...)
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", filepath.Join("public", "index.html"), "output file")
	rootCmd.AddCommand(renderCmd)
}
