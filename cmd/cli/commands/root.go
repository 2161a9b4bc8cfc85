// Package commands implements the ArqFlow CLI commands
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/madenai/arqflow/pkg/api/v1/client"
	"github.com/madenai/arqflow/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagToken         = "token"
)

// environment variable names
const (
	envServerAddress = "ARQFLOW_SERVER_ADDRESS"
	envToken         = "ARQFLOW_TOKEN"
)

var (
	// apiClient is the shared API client instance
	apiClient *client.APIClient
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	// authToken holds the Bearer token for authenticated calls.
	authToken string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.AuthToken = authToken

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL, "Address of the ArqFlow API server (env: ARQFLOW_SERVER_ADDRESS)")
	RootCmd.PersistentFlags().StringVarP(&authToken, flagToken, "t", "", "Bearer token for authenticated calls (env: ARQFLOW_TOKEN)")

	RootCmd.AddCommand(GetAuthCmd())
	RootCmd.AddCommand(GetProjectsCmd())
	RootCmd.AddCommand(GetBudgetsCmd())
	RootCmd.AddCommand(GetSchedulesCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "arqflow",
	Short: "ArqFlow CLI - A command line interface for the ArqFlow API",
	Long:  `ArqFlow CLI is a command line tool for managing projects, budgets, and schedules through the ArqFlow API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > Env Var > Default, resolved after godotenv.Load() has run.
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		if !cmd.Flags().Changed(flagToken) {
			if envTok := os.Getenv(envToken); envTok != "" {
				authToken = envTok
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
