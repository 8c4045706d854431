/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

type options struct {
	configPath string
	format     string
}

func main() {
	klog.InitFlags(flag.CommandLine)
	defer klog.Flush()

	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "ofdump",
		Short: "Decode and dump OpenFlow 1.0 and 1.3 traffic",
		Long: `ofdump decodes OpenFlow messages from captured bytes or from
switches connecting to it, and prints them as summaries, full
structure dumps or ovs-ofctl flow lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to an ofdump.toml file")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: summary, spew or flows")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	rootCmd.AddCommand(
		decodeCmd(opts),
		listenCmd(opts),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// wordSepNormalizeFunc lets every flag be spelled with dashes or
// underscores, klog registers its flags with underscores.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}

// load reads the config file, if any, and applies flag overrides.
func (o *options) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	return cfg, cfg.Validate()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ofdump %s (%s)\n", version, commit)
		},
	}
}
