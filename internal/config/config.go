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

// Package config loads the dresponse binary configuration via viper.
//
// Values are resolved in viper's usual order: explicit Set (CLI flags bound
// by the caller), environment (prefix DRESPONSE, dots become underscores),
// config file, then the defaults registered here.
package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dresponse/kind"
	"dirpx.dev/dresponse/mapper"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DRESPONSE"

// Keys understood by Load.
const (
	KeyServerAddr      = "server.addr"
	KeyShutdownTimeout = "server.shutdown_timeout"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyHTTPOverrides   = "mapper.http_overrides"
	KeyGRPCOverrides   = "mapper.grpc_overrides"
)

// Config is the full configuration of the dresponse binary.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Logging Logging `mapstructure:"logging"`
	Mapper  Mapper  `mapstructure:"mapper"`
}

// Server configures the HTTP service started by "dresponse serve".
type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Logging selects the zerolog level ("debug", "info", ...) and encoding
// ("json" or "console").
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Mapper holds per-kind transport overrides keyed by kind name. Keys may be
// written in any form kind.Parse accepts, including CamelCase, which viper
// folds to lower case before it reaches Parse.
// gRPC codes may be given by number ("9") or by name ("FAILED_PRECONDITION").
type Mapper struct {
	HTTPOverrides map[string]int    `mapstructure:"http_overrides"`
	GRPCOverrides map[string]string `mapstructure:"grpc_overrides"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
}

// Load reads the configuration into a Config. A nil v means a fresh viper
// instance; file may be empty, in which case only environment and defaults
// apply.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := cfg.MapperOptions(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MapperOptions converts the configured overrides into mapper options.
// Keys are applied in sorted order so errors are deterministic.
func (c Config) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option

	for _, name := range sortedKeys(c.Mapper.HTTPOverrides) {
		k, err := kind.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", KeyHTTPOverrides, err)
		}
		opts = append(opts, mapper.WithHTTPOverride(k, c.Mapper.HTTPOverrides[name]))
	}

	for _, name := range sortedKeys(c.Mapper.GRPCOverrides) {
		k, err := kind.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", KeyGRPCOverrides, err)
		}
		code, err := parseCode(c.Mapper.GRPCOverrides[name])
		if err != nil {
			return nil, fmt.Errorf("config: %s.%s: %w", KeyGRPCOverrides, name, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(k, int(code)))
	}

	return opts, nil
}

// parseCode accepts a numeric code or its canonical upper snake name.
func parseCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return codes.Code(n), nil
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(strconv.Quote(strings.ToUpper(s)))); err != nil {
		return 0, err
	}
	return c, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
