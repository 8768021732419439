package main

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ytget/swipeplayer/internal/library"
	"github.com/ytget/swipeplayer/internal/platform"
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("output", "o", "catalog.yaml", "Catalog file to write")
	scanCmd.Flags().StringP("name", "n", "", "Catalog name; defaults to the directory name")
	lo.Must0(scanCmd.MarkFlagFilename("output", "yaml", "yml"))
}

// scanCmd writes a catalog for a music directory, to be edited and passed to --catalog
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Write a YAML catalog for the audio files in a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output := lo.Must(cmd.Flags().GetString("output"))
		name := lo.Must(cmd.Flags().GetString("name"))

		count, err := writeCatalog(afero.NewOsFs(), args[0], output, name)
		handleErr(err)
		cmd.Printf("wrote %d tracks to %s\n", count, output)
	},
}

// writeCatalog scans dir and saves the result to output
func writeCatalog(fs afero.Fs, dir, output, name string) (int, error) {
	catalog, err := library.NewScanner(fs, dir).Load()
	if err != nil {
		return 0, err
	}
	if len(catalog.Tracks) == 0 {
		return 0, fmt.Errorf("no audio files in %s", dir)
	}
	if name != "" {
		catalog.Name = name
	}

	if _, ok := fs.(*afero.OsFs); ok {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(output)); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := library.SaveCatalog(fs, output, catalog); err != nil {
		return 0, err
	}
	return len(catalog.Tracks), nil
}
