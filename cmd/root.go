// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd implements the atoms command line tool.
package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/open-policy-agent/atom/v1/logging"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = NewRootCommand()

// env is the prefix of environment variables overriding flags, e.g.
// ATOMS_LOG_LEVEL=debug.
const env = "ATOMS"

// root carries the state shared by every subcommand.
type root struct {
	v      *viper.Viper
	logger *logging.StandardLogger
}

// NewRootCommand returns a fresh command tree.
func NewRootCommand() *cobra.Command {
	r := &root{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "atoms",
		Short: "Inspect and maintain the interned identifier table",
		Long: `Inspect and maintain the table of identifiers interned by the markup engine.

Flags may also be set through ATOMS_* environment variables or a YAML config
file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "read flag defaults from a YAML config file")
	cmd.PersistentFlags().String("log-level", "info", "set log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "set log format (text, json)")

	cmd.AddCommand(
		newLookupCommand(r),
		newListCommand(r),
		newScanCommand(r),
		newGenCommand(r),
		newVersionCommand(),
	)

	return cmd
}

// setup binds flags, environment and config file, and builds the logger.
func (r *root) setup(cmd *cobra.Command) error {
	r.v.SetEnvPrefix(env)
	r.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	r.v.AutomaticEnv()

	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := r.v.BindPFlags(fs); err != nil {
			return err
		}
	}

	if path := r.v.GetString("config"); path != "" {
		r.v.SetConfigFile(path)
		if err := r.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level, err := logging.GetLevel(r.v.GetString("log-level"))
	if err != nil {
		return err
	}

	r.logger = logging.New()
	r.logger.SetOutput(cmd.ErrOrStderr())
	r.logger.SetLevel(level)

	switch format := r.v.GetString("log-format"); format {
	case "text":
		r.logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		r.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	r.logger.Debug("Using log level %v.", level)
	return nil
}
