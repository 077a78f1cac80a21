// Copyright © 2018 ThreeComma.io <hello@threecomma.io>

package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/threecommaio/cassverify/pkg/module"
	"github.com/threecommaio/cassverify/pkg/nodetool"
)

var (
	cfgFile string

	// swapped in tests
	fs     afero.Fs        = afero.NewOsFs()
	runner nodetool.Runner = nodetool.ShellRunner{}
)

// errModuleFailed means the failure was already reported as a module result
var errModuleFailed = errors.New("module failed")

// rootCmd represents the base command, given an args file it runs as an automation module
var rootCmd = &cobra.Command{
	Use:   "cassverify [args-file]",
	Short: "Checks the data checksum of Cassandra tables with nodetool verify",
	Long: `Checks the data checksum of Cassandra tables with nodetool verify.

Given a single args file it behaves as an automation module: the file holds the
task parameters as json (or yaml) and the result is written to stdout as json.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if status := module.Run(cmd.Context(), fs, args[0], runner, cmd.OutOrStdout()); status != 0 {
			return errModuleFailed
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if err != errModuleFailed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cassverify.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.SetDefault("port", nodetool.DefaultPort)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(nodetool.UTCFormatter{Formatter: &log.TextFormatter{FullTimestamp: true}})

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".cassverify" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".cassverify")
	}

	viper.SetEnvPrefix("cassverify")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}
}
