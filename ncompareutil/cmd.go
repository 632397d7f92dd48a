/*
Copyright © 2025 the ncompare authors.
This file is part of ncompare.

ncompare is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ncompare is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ncompare.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package ncompareutil holds the command-line interface for the
// ncompare tool.
package ncompareutil

import (
	"fmt"

	"github.com/danielfromearth/ncompare"
	"github.com/danielfromearth/ncompare/ncio"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to ncompare.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "comparison_var_group",
			usage: `
              comparison_var_group is the name of a group which contains
              a desired comparison variable. When given, the variable
              lists of that group are also compared.`,
			shorthand:  "g",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "comparison_var_name",
			usage: `
              comparison_var_name is the name of a variable for which
              values are compared. It requires comparison_var_group to
              take effect.`,
			shorthand:  "v",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "no-color",
			usage: `
              no-color turns off all colorized output.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "report",
			usage: `
              report is a file to write the output to. The file must not
              already exist; console output is duplicated to it verbatim.`,
			shorthand:  "r",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "samples",
			usage: `
              samples is the number of random values drawn during the
              per-variable value comparison.`,
			defaultVal: ncompare.DefaultSamples,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "threshold",
			usage: `
              threshold is the absolute difference above which two
              sampled values count as a mismatch.`,
			defaultVal: ncompare.DefaultThreshold,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "debug",
			usage: `
              debug enables diagnostic logging on standard error.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("NCOMPARE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	Root.AddCommand(versionCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ncompare: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ncompare nc_a nc_b",
	Short: "Compare the variables contained within two NetCDF datasets.",
	Long: `ncompare compares the dimensions, groups and variables of two
NetCDF-style datasets and reports the differences side by side. It reports
differences but does not gate on them: the exit status is zero whenever the
full comparison sequence completes.

Configuration can be changed using command-line flags, a configuration file,
or by setting environment variables in the format 'NCOMPARE_var' where 'var'
is the name of the variable to be set.`,
	Args:              cobra.ExactArgs(2),
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		if Cfg.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		pathA, err := checkInputFile(args[0])
		if err != nil {
			return err
		}
		pathB, err := checkInputFile(args[1])
		if err != nil {
			return err
		}
		w, closeReport, err := reportWriter(Cfg.GetString("report"))
		if err != nil {
			return err
		}
		if closeReport != nil {
			defer closeReport()
		}
		threshold, err := cast.ToFloat64E(Cfg.Get("threshold"))
		if err != nil {
			return fmt.Errorf("ncompare: reading 'threshold': %v", err)
		}

		logger.WithFields(logrus.Fields{
			"nc_a": pathA,
			"nc_b": pathB,
		}).Debug("starting comparison")

		return ncompare.Compare(w, ncio.Open, pathA, pathB, ncompare.Options{
			Group:     Cfg.GetString("comparison_var_group"),
			Variable:  Cfg.GetString("comparison_var_name"),
			Color:     !Cfg.GetBool("no-color"),
			Samples:   Cfg.GetInt("samples"),
			Threshold: threshold,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ncompare.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ncompare v%s\n", ncompare.Version)
	},
	DisableAutoGenTag: true,
}
