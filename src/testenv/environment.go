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
package testenv

import (
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/hashicorp/go-version"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yugabyte/yb-objnames/src/constants"
	"github.com/yugabyte/yb-objnames/src/namegen"
	"github.com/yugabyte/yb-objnames/src/objref"
)

type capabilities struct {
	catalogs    bool
	schemas     bool
	defaultPort int
}

// MySQL databases are catalogs; they qualify names the same two-level way.
var dbCapabilities = map[string]capabilities{
	constants.POSTGRESQL: {catalogs: true, schemas: true, defaultPort: 5432},
	constants.YUGABYTEDB: {catalogs: true, schemas: true, defaultPort: 5433},
	constants.MSSQL:      {catalogs: true, schemas: true, defaultPort: 1433},
	constants.MYSQL:      {catalogs: true, schemas: false, defaultPort: 3306},
	constants.ORACLE:     {catalogs: false, schemas: true, defaultPort: 1521},
	constants.SQLITE:     {catalogs: false, schemas: false},
}

// Environment describes a database set up for name-resolution tests: where it
// runs, who connects to it, and the canonical containers it holds.
type Environment struct {
	DBType            string `mapstructure:"db-type"`
	ConfigurationName string `mapstructure:"config-name"`
	Version           string `mapstructure:"version"`
	OS                string `mapstructure:"os"`

	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	DatabaseName string `mapstructure:"db-name"`

	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	AlternateUsername string `mapstructure:"alternate-username"`
	AlternatePassword string `mapstructure:"alternate-password"`
	AdminUsername     string `mapstructure:"admin-username"`
	AdminPassword     string `mapstructure:"admin-password"`

	PrimaryCatalog      string `mapstructure:"primary-catalog"`
	AlternateCatalog    string `mapstructure:"alternate-catalog"`
	PrimarySchema       string `mapstructure:"primary-schema"`
	AlternateSchema     string `mapstructure:"alternate-schema"`
	AlternateTablespace string `mapstructure:"alternate-tablespace"`
}

func NewEnvironment(dbType string) (*Environment, error) {
	caps, ok := dbCapabilities[dbType]
	if !ok {
		return nil, goerrors.Errorf("unsupported db type %q: supported types are %s",
			dbType, strings.Join(constants.SupportedDBTypes, ", "))
	}
	return &Environment{
		DBType:            dbType,
		ConfigurationName: constants.CONFIG_NAME_STANDARD,
		OS:                constants.OS_LINUX,

		Host:         constants.DEFAULT_HOST,
		Port:         caps.defaultPort,
		DatabaseName: strings.ToLower(constants.PRIMARY_CATALOG),

		Username:          constants.DATABASE_USERNAME,
		Password:          constants.DATABASE_PASSWORD,
		AlternateUsername: constants.ALTERNATE_USERNAME,
		AlternatePassword: constants.ALTERNATE_PASSWORD,
		AdminUsername:     constants.ADMIN_USERNAME,
		AdminPassword:     constants.ADMIN_PASSWORD,

		PrimaryCatalog:      constants.PRIMARY_CATALOG,
		AlternateCatalog:    constants.ALTERNATE_CATALOG,
		PrimarySchema:       constants.PRIMARY_SCHEMA,
		AlternateSchema:     constants.ALTERNATE_SCHEMA,
		AlternateTablespace: constants.ALTERNATE_TABLESPACE,
	}, nil
}

/*
LoadEnvironment builds an Environment from the "environment" section of v.
Keys that are not set keep the defaults of the configured db type.

	environment:
	  db-type: postgresql
	  version: 15.4
	  primary-schema: lbschema
*/
func LoadEnvironment(v *viper.Viper, dbTypeOverride string) (*Environment, error) {
	dbType := lo.Ternary(dbTypeOverride != "", dbTypeOverride, v.GetString("environment.db-type"))
	if dbType == "" {
		return nil, goerrors.Errorf("db type is not set: use --db-type or environment.db-type")
	}
	env, err := NewEnvironment(dbType)
	if err != nil {
		return nil, err
	}
	err = v.UnmarshalKey("environment", env)
	if err != nil {
		return nil, goerrors.Errorf("parse environment config: %w", err)
	}
	env.DBType = dbType
	err = env.Validate()
	if err != nil {
		return nil, err
	}
	log.Infof("loaded test environment: %s", env)
	return env, nil
}

func (env *Environment) Validate() error {
	if _, ok := dbCapabilities[env.DBType]; !ok {
		return goerrors.Errorf("unsupported db type %q", env.DBType)
	}
	if !lo.Contains([]string{constants.OS_LINUX, constants.OS_WINDOWS}, strings.ToLower(env.OS)) {
		return goerrors.Errorf("unsupported os %q: use %s or %s", env.OS, constants.OS_LINUX, constants.OS_WINDOWS)
	}
	caps := dbCapabilities[env.DBType]
	if caps.catalogs && (env.PrimaryCatalog == "" || env.AlternateCatalog == "") {
		return goerrors.Errorf("%s supports catalogs: primary and alternate catalog must be set", env.DBType)
	}
	if (caps.catalogs || caps.schemas) && (env.PrimarySchema == "" || env.AlternateSchema == "") {
		return goerrors.Errorf("%s supports schemas: primary and alternate schema must be set", env.DBType)
	}
	return nil
}

// Supports reports whether the db type has objType as a container level.
// Non-container object types are always supported.
func (env *Environment) Supports(objType objref.ObjectType) bool {
	caps := dbCapabilities[env.DBType]
	switch objType {
	case objref.CATALOG:
		return caps.catalogs
	case objref.SCHEMA:
		return caps.schemas
	default:
		return true
	}
}

func (env *Environment) ContainerSet() namegen.ContainerSet {
	return namegen.ContainerSet{
		SupportsCatalogs: env.Supports(objref.CATALOG),
		SupportsSchemas:  env.Supports(objref.SCHEMA),
		PrimaryCatalog:   env.PrimaryCatalog,
		AlternateCatalog: env.AlternateCatalog,
		PrimarySchema:    env.PrimarySchema,
		AlternateSchema:  env.AlternateSchema,
	}
}

func (env *Environment) Enumerator() *namegen.Enumerator {
	return namegen.NewEnumerator(env.ContainerSet())
}

/*
ShortVersion is the first two dot fields of the configured version, LATEST if
none. Trailing empty fields are dropped. When both fields are numeric they are
normalised through go-version.

	"15.4.1" -> "15.4", "11g.2" -> "11g.2", "12c.1.0" -> "12c.1", "15." -> "15", "015.04" -> "15.4"
*/
func (env *Environment) ShortVersion() string {
	if env.Version == "" {
		return constants.LATEST_VERSION
	}
	parts := strings.Split(env.Version, ".")
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 1 {
		return parts[0]
	}
	short := parts[0] + "." + parts[1]
	if !lo.EveryBy(parts[:2], isDigits) {
		return short
	}
	v, err := version.NewVersion(short)
	if err != nil {
		return short
	}
	segments := v.Segments()
	return fmt.Sprintf("%d.%d", segments[0], segments[1])
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

func (env *Environment) IsWindows() bool {
	return strings.EqualFold(env.OS, constants.OS_WINDOWS)
}

func (env *Environment) IsLinux() bool {
	return strings.EqualFold(env.OS, constants.OS_LINUX)
}

func (env *Environment) FileSeparator() string {
	return lo.Ternary(env.IsWindows(), `\`, "/")
}

func (env *Environment) VagrantBaseBoxName() string {
	return lo.Ternary(env.IsWindows(),
		constants.VAGRANT_BOX_NAME_WINDOWS_STANDARD, constants.VAGRANT_BOX_NAME_LINUX_STANDARD)
}

func (env *Environment) String() string {
	return fmt.Sprintf("%s[config:%s]", env.DBType, env.ConfigurationName)
}

func (env *Environment) Description() string {
	v := lo.Ternary(env.Version == "", constants.LATEST_VERSION, env.Version)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Connection URL: %s\n", env.ConnectionURL()))
	sb.WriteString(fmt.Sprintf("Version: %s\n", v))
	sb.WriteString(fmt.Sprintf("Standard User: %s\n", env.Username))
	sb.WriteString(fmt.Sprintf("         Password: %s\n", env.Password))
	sb.WriteString(fmt.Sprintf("Primary Catalog: %s\n", env.PrimaryCatalog))
	sb.WriteString(fmt.Sprintf("Primary Schema: %s (if applicable)\n", env.PrimarySchema))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Alternate User: %s\n", env.AlternateUsername))
	sb.WriteString(fmt.Sprintf("          Password: %s\n", env.AlternatePassword))
	sb.WriteString(fmt.Sprintf("Alternate Catalog: %s\n", env.AlternateCatalog))
	sb.WriteString(fmt.Sprintf("Alternate Schema: %s (if applicable)\n", env.AlternateSchema))
	sb.WriteString(fmt.Sprintf("Alternate Tablespace: %s\n", env.AlternateTablespace))
	return sb.String()
}
