//go:build unit

/*
Copyright (c) YugabyteDB, Inc.

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
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readConfig(t *testing.T, content string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return v
}

func TestValidConfig(t *testing.T) {
	v := readConfig(t, `
log-level: debug
environment:
  db-type: postgresql
  primary-schema: lbschema
enumerate:
  max-depth: 2
  include-nulls: true
resolve:
  all: true
`)
	assert.NoError(t, ValidateConfigFile(v))
}

func TestInvalidConfig(t *testing.T) {
	v := readConfig(t, `
log-levle: debug
environment:
  db-type: postgresql
  primary-scheme: lbschema
enumerate:
  max-dept: 2
  include-partials: true
export-data:
  parallel-jobs: 4
`)
	err := ValidateConfigFile(v)
	require.Error(t, err)

	var validationErr *ConfigValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.InvalidGlobalKeys.Contains("log-levle"))
	assert.True(t, validationErr.InvalidSectionKeys["environment"].Contains("primary-scheme"))
	assert.True(t, validationErr.InvalidSectionKeys["enumerate"].Contains("max-dept"))
	assert.False(t, validationErr.InvalidSectionKeys["enumerate"].Contains("include-partials"))
	assert.True(t, validationErr.InvalidSections.Contains("export-data"))

	msg := err.Error()
	assert.Contains(t, msg, "Invalid global config keys: [log-levle]")
	assert.Contains(t, msg, "Invalid keys in section 'enumerate': [max-dept]")
	assert.Contains(t, msg, "Invalid sections: [export-data]")
}
