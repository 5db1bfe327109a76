// Package cmd implements the Cobra-based CLI for aznet.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/session"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

var (
	cfgFile       string
	subscription  string
	resourceGroup string
	location      string
	verbose       bool
	jsonOutput    bool
	dryRun        bool
)

// rootCmd is the top-level command for aznet.
var rootCmd = &cobra.Command{
	Use:   "aznet",
	Short: "Azure network resource CLI",
	Long: `aznet creates Azure network resources from short, human-friendly
parameters. Before a request is sent, every command normalizes its inputs:
short names are resolved into fully-qualified resource IDs using the active
subscription and resource group, derived settings (listener protocol,
frontend ports, allocation modes) are filled in, and conflicting options are
rejected with an actionable message.

Ambient defaults (subscription, resource group, location) come from flags,
AZNET_* environment variables, or aznet.yaml (see aznet configure).

Use --dry-run on any create command to print the exact request body without
touching Azure.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.Init(verbose, jsonOutput)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: aznet.yaml)")
	rootCmd.PersistentFlags().StringVar(&subscription, "subscription", "", "subscription id (default: active session)")
	rootCmd.PersistentFlags().StringVarP(&resourceGroup, "resource-group", "g", "", "resource group name")
	rootCmd.PersistentFlags().StringVarP(&location, "location", "l", "", "Azure region for created resources")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the request body without sending it")

	_ = viper.BindPFlag("defaults.subscription", rootCmd.PersistentFlags().Lookup("subscription"))
	_ = viper.BindPFlag("defaults.resourceGroup", rootCmd.PersistentFlags().Lookup("resource-group"))
	_ = viper.BindPFlag("defaults.location", rootCmd.PersistentFlags().Lookup("location"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aznet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("AZNET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Flags win over config; config fills the gaps.
	if subscription == "" {
		subscription = viper.GetString("defaults.subscription")
	}
	if resourceGroup == "" {
		resourceGroup = viper.GetString("defaults.resourceGroup")
	}
	if location == "" {
		location = viper.GetString("defaults.location")
	}
}

// requestContext resolves the ambient scope every validator needs. The
// subscription comes from the active session when not explicit.
func requestContext() (validate.Context, error) {
	if resourceGroup == "" {
		return validate.Context{}, exitcode.Wrap(exitcode.Validation, &output.CLIError{
			Message: "--resource-group is required",
			Fix:     "pass -g/--resource-group or set defaults.resourceGroup in aznet.yaml",
		})
	}
	sub, err := session.New().SubscriptionID(subscription)
	if err != nil {
		return validate.Context{}, exitcode.Wrap(exitcode.Validation,
			output.WrapError(err, "cannot resolve subscription"))
	}
	return validate.Context{SubscriptionID: sub, ResourceGroup: resourceGroup}, nil
}

// requireLocation is checked only for live runs; dry runs may omit it.
func requireLocation() error {
	if location == "" {
		return exitcode.Wrap(exitcode.Validation, &output.CLIError{
			Message: "--location is required",
			Fix:     "pass -l/--location or set defaults.location via aznet configure",
		})
	}
	return nil
}

// fieldOf bridges a pflag string value into a tri-state Field, recording
// whether the user passed the flag explicitly.
func fieldOf(cmd *cobra.Command, flagName, value string) validate.Field {
	return validate.Field{Value: value, Specified: cmd.Flags().Changed(flagName)}
}
