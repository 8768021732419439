package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/swipeplayer/internal/bootstrap"
	"github.com/ytget/swipeplayer/internal/config"
)

// flagKeys maps root flags to the configuration keys they override
var flagKeys = map[string]string{
	"music-dir": config.KeyMusicDir,
	"catalog":   config.KeyCatalogPath,
	"log-level": config.KeyLogsLevel,
	"log-json":  config.KeyLogsJSON,
	"log-file":  config.KeyLogsWrite,
	"mute":      config.KeyMute,
}

var defaults = config.NewDefaults()

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringP("music-dir", "d", "", "Directory scanned for mp3 and wav files")
	flags.StringP("catalog", "c", "", "YAML catalog file; takes precedence over the music directory")
	lo.Must0(rootCmd.MarkPersistentFlagFilename("catalog", "yaml", "yml"))
	lo.Must0(rootCmd.MarkPersistentFlagDirname("music-dir"))

	flags.String("log-level", defaults.GetString(config.KeyLogsLevel), "Available options are: panic, fatal, error, warn, info, debug, trace")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("log-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(logrus.AllLevels, func(level logrus.Level, _ int) string {
			return level.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.Bool("log-file", false, "Write logs to a dated file instead of stderr")
	flags.BoolP("mute", "m", false, "Do not open the audio device")

	for name, key := range flagKeys {
		lo.Must0(defaults.BindPFlag(key, flags.Lookup(name)))
	}

	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
}

// rootCmd opens the player window
var rootCmd = &cobra.Command{
	Use:   "swipeplayer",
	Short: "A music player with a swipeable now-playing sheet",
	Long: "SwipePlayer plays a YAML catalog or a folder of mp3 and wav files.\n" +
		"Flags override stored preferences for this run only.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(bootstrap.Run(bootstrap.Options{
			Version:  version,
			Defaults: defaults,
			Pinned:   pinnedKeys(cmd),
		}))
	},
}

// pinnedKeys returns the configuration keys set explicitly on the command line
func pinnedKeys(cmd *cobra.Command) []string {
	var keys []string
	for name, key := range flagKeys {
		if cmd.Flags().Changed(name) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		logrus.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
