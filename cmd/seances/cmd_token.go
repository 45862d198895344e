package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seances/internal/auth"
	tokenauth "seances/pkg/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token CLIENT",
	Short: "Mint an API bearer token signed with APP_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.AppSecret == "" {
			return fmt.Errorf("APP_SECRET is not set")
		}
		token, err := auth.NewService(cfg.AppSecret, cfg.TokenTTL).GenerateToken(args[0])
		if err != nil {
			return err
		}
		log.Info().Str("client", args[0]).Dur("ttl", cfg.TokenTTL).Msg("token issued")
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token TOKEN",
	Short: "Print the bcrypt hash to set as API_TOKEN_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := tokenauth.HashToken(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
