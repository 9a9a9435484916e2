/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/docextractor/utils"
)

// issueTokenCmd represents the issue-token command
var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Print a bearer token for the upload endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Auth.UploadSecret == "" {
			return fmt.Errorf("auth.upload_secret (JWT_SECRET_UPLOAD) is not set")
		}
		token, err := utils.GenerateUploadToken(cfg.Auth.UploadSecret, subject, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(issueTokenCmd)
	issueTokenCmd.Flags().StringP("subject", "s", "uploader", "Subject recorded in the token")
	issueTokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime, 0 for no expiry")
}
