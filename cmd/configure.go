package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/config"
	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/wizard"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set default subscription, resource group and region",
	Long: `Interactively writes aznet.yaml in the current directory. The defaults
recorded there fill in --subscription, --resource-group and --location when
the flags are omitted.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName
	if cfgFile != "" {
		path = cfgFile
	}

	var existing *config.Config
	if loaded, err := config.Load(path); err == nil {
		existing = loaded
	}

	fmt.Fprintln(os.Stderr, output.StyleTitle.Render("aznet configure – project defaults"))

	cfg, err := wizard.RunConfigure(wizard.NewSurveyPrompter(), existing)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			output.Warn("configure cancelled")
			return nil
		}
		return err
	}

	result, err := config.Validate(cfg)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}
	if !result.Valid {
		return exitcode.Wrap(exitcode.Validation,
			fmt.Errorf("config does not match schema: %v", result.Errors))
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}
	output.Success("wrote " + path)
	return nil
}
