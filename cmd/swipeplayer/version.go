package main

import (
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytget/swipeplayer/internal/bootstrap"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string")
}

// versionCmd prints version and platform
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and platform",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(version)
			return
		}
		cmd.Printf("%s %s %s/%s\n", bootstrap.AppName, version, runtime.GOOS, runtime.GOARCH)
	},
}
