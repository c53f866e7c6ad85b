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
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/viper"
)

// ConfigValidationError holds all the invalid configurations detected
type ConfigValidationError struct {
	InvalidGlobalKeys  mapset.Set[string]
	InvalidSectionKeys map[string]mapset.Set[string]
	InvalidSections    mapset.Set[string]
}

func sorted(s mapset.Set[string]) []string {
	list := s.ToSlice()
	slices.Sort(list)
	return list
}

// Error implements the error interface for ValidationError
func (e *ConfigValidationError) Error() string {
	var sb strings.Builder

	sb.WriteString("\nConfig file validation failed:\n")

	if e.InvalidGlobalKeys.Cardinality() > 0 {
		sb.WriteString(fmt.Sprintf("Invalid global config keys: [%s]\n", strings.Join(sorted(e.InvalidGlobalKeys), ", ")))
	}

	sections := make([]string, 0, len(e.InvalidSectionKeys))
	for section := range e.InvalidSectionKeys {
		sections = append(sections, section)
	}
	slices.Sort(sections)
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("Invalid keys in section '%s': [%s]\n", section, strings.Join(sorted(e.InvalidSectionKeys[section]), ", ")))
	}

	if e.InvalidSections.Cardinality() > 0 {
		sb.WriteString(fmt.Sprintf("Invalid sections: [%s]\n", strings.Join(sorted(e.InvalidSections), ", ")))
	}

	return sb.String()
}

// Allowed global config keys
var AllowedGlobalConfigKeys = mapset.NewThreadUnsafeSet[string](
	"log-dir", "log-level", "db-type",
)

// Allowed environment config keys
var allowedEnvironmentConfigKeys = mapset.NewThreadUnsafeSet[string](
	"db-type", "config-name", "version", "os",
	"host", "port", "db-name",
	"username", "password", "alternate-username", "alternate-password",
	"admin-username", "admin-password",
	"primary-catalog", "alternate-catalog", "primary-schema", "alternate-schema",
	"alternate-tablespace",
)

// Allowed enumerate config keys
var allowedEnumerateConfigKeys = mapset.NewThreadUnsafeSet[string](
	"log-level",
	"object-type", "max-depth", "include-partials", "include-nulls",
	"format", "output-file",
)

// Allowed resolve config keys
var allowedResolveConfigKeys = mapset.NewThreadUnsafeSet[string](
	"log-level",
	"object-type", "all",
)

// Define allowed nested sections
var AllowedConfigSections = map[string]mapset.Set[string]{
	"environment": allowedEnvironmentConfigKeys,
	"enumerate":   allowedEnumerateConfigKeys,
	"resolve":     allowedResolveConfigKeys,
}

// ValidateConfigFile checks every key of v against the allowed global and section keys.
func ValidateConfigFile(v *viper.Viper) error {
	invalidGlobalKeys := mapset.NewThreadUnsafeSet[string]()
	invalidSectionKeys := make(map[string]mapset.Set[string])
	invalidSections := mapset.NewThreadUnsafeSet[string]()

	for _, key := range v.AllKeys() {
		parts := strings.Split(key, ".")
		if len(parts) == 1 {
			if !AllowedGlobalConfigKeys.Contains(key) {
				invalidGlobalKeys.Add(key)
			}
			continue
		}
		// "a.b.c" -> section: "a", nestedKey: "b.c"
		section := parts[0]
		nestedKey := strings.Join(parts[1:], ".")

		allowedKeys, ok := AllowedConfigSections[section]
		if !ok {
			invalidSections.Add(section)
			continue
		}
		if !allowedKeys.Contains(nestedKey) {
			if _, exists := invalidSectionKeys[section]; !exists {
				invalidSectionKeys[section] = mapset.NewThreadUnsafeSet[string]()
			}
			invalidSectionKeys[section].Add(nestedKey)
		}
	}

	if invalidGlobalKeys.Cardinality() > 0 || len(invalidSectionKeys) > 0 || invalidSections.Cardinality() > 0 {
		return &ConfigValidationError{
			InvalidGlobalKeys:  invalidGlobalKeys,
			InvalidSectionKeys: invalidSectionKeys,
			InvalidSections:    invalidSections,
		}
	}
	return nil
}
