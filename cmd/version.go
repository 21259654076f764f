package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCommand バージョンプリントコマンド
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("atelier %s (revision %s, %s %s/%s)\n", Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
