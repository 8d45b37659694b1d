package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sadopc/standby/internal/export"
	"github.com/sadopc/standby/internal/slides"
	"github.com/spf13/cobra"
)

func newSlidesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Recent slide commands",
	}
	cmd.AddCommand(newSlidesListCmd(app))
	cmd.AddCommand(newSlidesAddCmd(app))
	cmd.AddCommand(newSlidesRmCmd(app))
	cmd.AddCommand(newSlidesExportCmd(app))
	return cmd
}

// withCache opens the store, loads the persisted slides and runs fn.
func withCache(app *App, fn func(c *slides.Cache) error) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	// LoadPersisted only logs a bad record; scripts get the error.
	if _, err := s.LoadRecentSlides(); err != nil {
		return err
	}
	c := slides.New(s)
	c.LoadPersisted()
	return fn(c)
}

func newSlidesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent slides, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(app, func(c *slides.Cache) error {
				out := cmd.OutOrStdout()
				list := c.List()
				if len(list) == 0 {
					fmt.Fprintln(out, "no recent slides")
					return nil
				}
				for i, img := range list {
					detail := "unknown format"
					if info, err := slides.Describe(img.Data); err == nil {
						detail = info.String()
					}
					fmt.Fprintf(out, "%d\t%s\t%d bytes\t%s\n", i+1, img.Name, len(img.Data), detail)
				}
				return nil
			})
		},
	}
}

func newSlidesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Add an image to the recent slides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := slides.ReadFile(args[0])
			if err != nil {
				return err
			}
			return withCache(app, func(c *slides.Cache) error {
				c.Add(name, data)
				fmt.Fprintf(cmd.OutOrStdout(), "added %s (%d/%d)\n", name, c.Len(), slides.MaxRecent)
				return nil
			})
		},
	}
}

func newSlidesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a recent slide by its position in list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			return withCache(app, func(c *slides.Cache) error {
				list := c.List()
				if !c.Remove(pos - 1) {
					return fmt.Errorf("slide %d not found (have %d)", pos, len(list))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", list[pos-1].Name)
				return nil
			})
		},
	}
}

func newSlidesExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export recent slides (json: directory with manifest, csv: summary file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(app, func(c *slides.Cache) error {
				list := c.List()
				switch format {
				case "json":
					if err := export.SlidesToDir(list, args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "exported %d slides to %s\n", len(list), filepath.Join(args[0], export.ManifestName))
				case "csv":
					if err := export.ToCSV(list, args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "exported %d slides to %s\n", len(list), args[0])
				default:
					return fmt.Errorf("unknown format %q (json|csv)", format)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format (json|csv)")
	return cmd
}
