package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/client/cli"
)

const (
	// envPrefix must be used when setting flag values through environment variables,
	// e.g. QUERYRELAY_CALLBACK or QUERYRELAY_WITH_SWAP_FEE.
	envPrefix = "QUERYRELAY"

	configName = "queryrelay"
	flagConfig = "config"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd returns the queryrelay command with the packet utilities of the query
// relay module as subcommands. Flags that are not given on the command line are read,
// in order of precedence, from the environment and from the config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "queryrelay",
		Short:         "Build and inspect IBC query relay packets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString(flagConfig)
			if err != nil {
				return err
			}

			if err := setupViper(v, configPath); err != nil {
				return err
			}

			return applyConfig(v, cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a queryrelay.yaml config file")

	queryCmd := cli.GetQueryCmd()
	for _, subCmd := range queryCmd.Commands() {
		queryCmd.RemoveCommand(subCmd)
		rootCmd.AddCommand(subCmd)
	}

	return rootCmd
}

// setupViper binds the environment and loads the config file. Without an explicit
// path the config is searched for in $HOME/.queryrelay and the working directory, and
// a missing file is not an error.
func setupViper(v *viper.Viper, configPath string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return v.ReadInConfig()
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.queryrelay")
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}

	return err
}

// applyConfig sets every flag left unset on the command line to its configured value.
func applyConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == flagConfig || !v.IsSet(f.Name) {
			return
		}

		if setErr := flags.Set(f.Name, v.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("invalid configured value for %s: %w", f.Name, setErr)
		}
	})

	return err
}
