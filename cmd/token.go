package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgenie-lambda/internal/auth"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the app API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		auth.Init()

		user, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if user == "" {
			user = uuid.NewString()
		} else if _, err := uuid.Parse(user); err != nil {
			return fmt.Errorf("user must be a uuid: %w", err)
		}

		token, err := auth.GenerateJWT(user, role, ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "User id (random when empty)")
	tokenCmd.Flags().String("role", "teacher", "Role claim")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}
