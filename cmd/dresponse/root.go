/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"io"

	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/internal/config"
	"dirpx.dev/dresponse/mapper"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by all subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	out        io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:   "dresponse",
		Short: "Inspect and serve the dresponse kind table",
		Long: `dresponse prints how every response kind resolves to HTTP and gRPC
statuses, and can run a small HTTP service speaking the response protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "path to a config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "json", "log format: json or console")
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(
		newKindsCmd(a),
		newClassifyCmd(a),
		newServeCmd(a),
	)
	return root
}

// load reads the configuration and builds the mapper it describes.
func (a *app) load() (config.Config, apis.Mapper, error) {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	opts, err := cfg.MapperOptions()
	if err != nil {
		return config.Config{}, nil, err
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, m, nil
}
