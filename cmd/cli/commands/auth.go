package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madenai/arqflow/pkg/api/v1/handlers"
)

// Flag names
const (
	flagEmail    = "email"
	flagPassword = "password"
	flagUserName = "user-name"
	flagCompany  = "company"
)

// GetAuthCmd returns the auth command group
func GetAuthCmd() *cobra.Command {
	return authCmd
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(meCmd)

	// Add flags for register
	registerCmd.Flags().StringP(flagUserName, "n", "", "Account name")
	registerCmd.Flags().StringP(flagEmail, "e", "", "Account email")
	registerCmd.Flags().StringP(flagPassword, "p", "", "Account password")
	registerCmd.Flags().StringP(flagCompany, "c", "", "Company name")
	for _, f := range []string{flagUserName, flagEmail, flagPassword} {
		if err := registerCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for register command: %w", f, err))
		}
	}

	// Add flags for login
	loginCmd.Flags().StringP(flagEmail, "e", "", "Account email")
	loginCmd.Flags().StringP(flagPassword, "p", "", "Account password")
	for _, f := range []string{flagEmail, flagPassword} {
		if err := loginCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for login command: %w", f, err))
		}
	}
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagUserName)
		if err != nil {
			return fmt.Errorf("error getting user-name flag: %w", err)
		}
		email, err := cmd.Flags().GetString(flagEmail)
		if err != nil {
			return fmt.Errorf("error getting email flag: %w", err)
		}
		password, err := cmd.Flags().GetString(flagPassword)
		if err != nil {
			return fmt.Errorf("error getting password flag: %w", err)
		}
		company, err := cmd.Flags().GetString(flagCompany)
		if err != nil {
			return fmt.Errorf("error getting company flag: %w", err)
		}

		user, err := apiClient.Register(context.Background(), handlers.RegisterParams{
			Name:     name,
			Email:    email,
			Password: password,
			Company:  company,
		})
		if err != nil {
			return fmt.Errorf("error registering account: %w", err)
		}

		return printJSON(user)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a Bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, err := cmd.Flags().GetString(flagEmail)
		if err != nil {
			return fmt.Errorf("error getting email flag: %w", err)
		}
		password, err := cmd.Flags().GetString(flagPassword)
		if err != nil {
			return fmt.Errorf("error getting password flag: %w", err)
		}

		resp, err := apiClient.Login(context.Background(), handlers.LoginParams{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("error logging in: %w", err)
		}

		return printJSON(resp)
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated account",
	RunE: func(_ *cobra.Command, _ []string) error {
		user, err := apiClient.Me(context.Background())
		if err != nil {
			return fmt.Errorf("error getting account: %w", err)
		}
		return printJSON(user)
	},
}

// printJSON renders a value as indented JSON on stdout
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
