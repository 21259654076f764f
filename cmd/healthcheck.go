package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/router/consts"
)

// healthcheckCommand 起動中のサーバーの/api/pingを叩くヘルスチェックコマンド
func healthcheckCommand() *cobra.Command {
	var timeout time.Duration

	cmd := cobra.Command{
		Use:   "healthcheck",
		Short: "Ping the running atelier server",
		Run: func(_ *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			client := &http.Client{Timeout: timeout}
			url := fmt.Sprintf("http://localhost:%d/api/ping", c.Port)
			resp, err := client.Get(url)
			if err != nil {
				logger.Fatal("failed to reach atelier", zap.String("url", url), zap.Error(err))
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				logger.Fatal("unexpected status", zap.String("url", url), zap.Int("status", resp.StatusCode))
			}
			logger.Info("atelier is healthy",
				zap.String("version", resp.Header.Get(consts.HeaderVersion)),
				zap.String("revision", resp.Header.Get(consts.HeaderRevision)))
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "timeout of the ping request")

	return &cmd
}
