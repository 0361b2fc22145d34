package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/cli/styles"
	"github.com/bnema/dumbcam/internal/infrastructure/config"
)

var configSchemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location and generate its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use",
	Long:  `Display the config file path. Reaching this command means the file loaded and validated.`,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Long: `Writes config.schema.json next to the config file so editors with a TOML
language server can complete and validate settings.

Examples:
  dumbcam config schema
  dumbcam config schema --stdout > config.schema.json`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()
	if path == "" {
		fmt.Println(renderer.RenderError(fmt.Errorf("no config file in use")))
		return nil
	}

	_, statErr := os.Stat(path)
	fmt.Println(renderer.RenderConfigInfo(path, statErr == nil))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaStdout {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	schemaFile, err := config.GenerateSchemaFile(filepath.Dir(app.Manager.GetConfigFile()))
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(schemaFile))
	return nil
}
