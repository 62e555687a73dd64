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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dirpx.dev/dresponse/kind"
	"dirpx.dev/dresponse/mapper"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dresponse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	opts, err := cfg.MapperOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
server:
  addr: ":9000"
logging:
  level: debug
mapper:
  http_overrides:
    updated: 200
  grpc_overrides:
    conflict: FAILED_PRECONDITION
    not_found: 5
`)
	t.Setenv("DRESPONSE_LOGGING_LEVEL", "error")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "error", cfg.Logging.Level, "environment wins over file")

	opts, err := cfg.MapperOptions()
	require.NoError(t, err)
	m, err := mapper.New(opts...)
	require.NoError(t, err)

	assert.Equal(t, 200, m.HTTPStatus(kind.Updated))
	assert.Equal(t, codes.FailedPrecondition, m.GRPCStatus(kind.Conflict))
	assert.Equal(t, codes.NotFound, m.GRPCStatus(kind.NotFound))
	assert.Equal(t, 404, m.HTTPStatus(kind.NotFound))
}

func TestLoad_CamelCaseKindKeys(t *testing.T) {
	path := writeFile(t, `
mapper:
  http_overrides:
    NotFound: 410
  grpc_overrides:
    InvalidSchema: FAILED_PRECONDITION
`)

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	opts, err := cfg.MapperOptions()
	require.NoError(t, err)
	m, err := mapper.New(opts...)
	require.NoError(t, err)

	assert.Equal(t, 410, m.HTTPStatus(kind.NotFound))
	assert.Equal(t, codes.FailedPrecondition, m.GRPCStatus(kind.InvalidSchema))
}

func TestLoad_GRPCOKForFailureRejected(t *testing.T) {
	path := writeFile(t, `
mapper:
  grpc_overrides:
    not_found: OK
`)

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	opts, err := cfg.MapperOptions()
	require.NoError(t, err)
	_, err = mapper.New(opts...)
	assert.Error(t, err)
}

func TestLoad_FlagOverride(t *testing.T) {
	v := viper.New()
	v.Set(KeyServerAddr, "127.0.0.1:0")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, `
mapper:
  http_overrides:
    teapot: 418
`)
	_, err = Load(nil, path)
	assert.ErrorIs(t, err, kind.ErrKindInvalid)

	path = writeFile(t, `
mapper:
  grpc_overrides:
    conflict: NOT_A_CODE
`)
	_, err = Load(nil, path)
	assert.Error(t, err)
}

func TestParseCode(t *testing.T) {
	tests := map[string]codes.Code{
		"9":                  codes.FailedPrecondition,
		"ABORTED":            codes.Aborted,
		"permission_denied":  codes.PermissionDenied,
		" INVALID_ARGUMENT ": codes.InvalidArgument,
	}
	for in, want := range tests {
		got, err := parseCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
