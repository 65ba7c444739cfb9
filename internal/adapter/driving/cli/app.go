package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudsizing/aws-inventory-go/internal/application/usecase"
	"github.com/cloudsizing/aws-inventory-go/internal/shared/types"
	"github.com/cloudsizing/aws-inventory-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	inventoryUseCase *usecase.InventoryUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-inventory",
		Short:   "AWS resource inventory for sizing",
		Long:    "Counts AWS resources across all regions of one or more profiles and prints a sizing report.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Inventory version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("profiles", "p", nil, "AWS profiles to inventory (comma-separated; default: the default profile)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Print the report as JSON instead of text")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print per-region counts as they are collected")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	rawProfiles, _ := app.rootCmd.Flags().GetStringSlice("profiles")
	jsonOutput, _ := app.rootCmd.Flags().GetBool("json")
	verbose, _ := app.rootCmd.Flags().GetBool("verbose")

	var profiles []string
	for _, profile := range rawProfiles {
		profile = strings.TrimSpace(profile)
		if profile != "" {
			profiles = append(profiles, profile)
		}
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Profiles:   profiles,
		JSON:       jsonOutput,
		Verbose:    verbose,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// No modo JSON o stdout fica reservado para o relatório.
	if !cliArgs.JSON {
		displayWelcomeBanner(app.version)
		go version.CheckLatestVersion(app.version)
	}

	ctx := context.Background()
	return app.inventoryUseCase.RunInventory(ctx, cliArgs)
}

// SetInventoryUseCase sets the inventory use case for the CLI app.
func (app *CLIApp) SetInventoryUseCase(useCase *usecase.InventoryUseCase) {
	app.inventoryUseCase = useCase
}
