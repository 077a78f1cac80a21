// Copyright © 2018 ThreeComma.io <hello@threecomma.io>

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/threecommaio/cassverify/pkg/nodetool"
)

// flag name -> viper key
var verifyFlagKeys = map[string]string{
	"host":          "host",
	"port":          "port",
	"username":      "username",
	"password":      "password",
	"password-file": "password_file",
	"nodetool-path": "nodetool_path",
	"keyspace":      "keyspace",
	"table":         "table",
	"extended":      "extended",
}

func addVerifyFlags(flags *pflag.FlagSet) {
	flags.String("host", "", "the node to verify (default is the local fqdn)")
	flags.Int("port", nodetool.DefaultPort, "the nodetool jmx port")
	flags.String("username", "", "the username to authenticate with")
	flags.String("password", "", "the password to authenticate with")
	flags.String("password-file", "", "path to a file containing the password, wins over --password")
	flags.String("nodetool-path", "", "the directory containing nodetool")
	flags.StringP("keyspace", "k", "", "only verify this keyspace")
	flags.StringSliceP("table", "t", []string{}, "only verify these tables")
	flags.BoolP("extended", "e", false, "verify each cell, beyond the sstable checksums")
}

// bindVerifyFlags binds the flags of the running command, both verify and command share the keys
func bindVerifyFlags(cmd *cobra.Command, args []string) error {
	for name, key := range verifyFlagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func verifyCommandFromConfig() *nodetool.VerifyCommand {
	builder := nodetool.NewCommandBuilder(nodetool.ConnectionConfig{
		Host:         viper.GetString("host"),
		Port:         viper.GetInt("port"),
		Username:     viper.GetString("username"),
		Password:     viper.GetString("password"),
		PasswordFile: viper.GetString("password_file"),
		NodetoolPath: viper.GetString("nodetool_path"),
	})
	return nodetool.NewVerifyCommand(builder, nodetool.VerifyRequest{
		Keyspace: viper.GetString("keyspace"),
		Tables:   viper.GetStringSlice("table"),
		Extended: viper.GetBool("extended"),
	})
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify",
	Short:   "Runs nodetool verify and prints the result as json",
	Args:    cobra.NoArgs,
	PreRunE: bindVerifyFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetBool("check")
		if check {
			return nodetool.Report(cmd.OutOrStdout(), nodetool.SkippedResult())
		}
		result := verifyCommandFromConfig().Run(cmd.Context(), runner)
		return nodetool.Report(cmd.OutOrStdout(), result)
	},
}

// commandCmd represents the command command
var commandCmd = &cobra.Command{
	Use:     "command",
	Short:   "Prints the nodetool verify command with credentials masked",
	Args:    cobra.NoArgs,
	PreRunE: bindVerifyFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write([]byte(verifyCommandFromConfig().Redacted() + "\n"))
		return err
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(commandCmd)

	addVerifyFlags(verifyCmd.Flags())
	addVerifyFlags(commandCmd.Flags())
	verifyCmd.Flags().Bool("check", false, "check mode, report the run as skipped without executing")
}
