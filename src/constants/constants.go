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
package constants

const (
	// Target DB Types
	YUGABYTEDB = "yugabytedb"
	POSTGRESQL = "postgresql"
	ORACLE     = "oracle"
	MYSQL      = "mysql"
	MSSQL      = "mssql"
	SQLITE     = "sqlite"
)

const (
	// Canonical container names of a test environment
	PRIMARY_CATALOG   = "LBCAT"
	ALTERNATE_CATALOG = "LBCAT2"
	PRIMARY_SCHEMA    = "LBSCHEMA"
	ALTERNATE_SCHEMA  = "LBSCHEMA2"

	ALTERNATE_TABLESPACE = "lbtbsp2"

	DATABASE_USERNAME  = "lbuser"
	DATABASE_PASSWORD  = "lbuser"
	ALTERNATE_USERNAME = "lbuser2"
	ALTERNATE_PASSWORD = "lbuser2"
	ADMIN_USERNAME     = "lbadmin"
	ADMIN_PASSWORD     = "lbadmin"
)

const (
	CONFIG_NAME_STANDARD = "standard"

	OS_LINUX   = "linux"
	OS_WINDOWS = "windows"

	DEFAULT_HOST = "vagrant"

	VAGRANT_BOX_NAME_WINDOWS_STANDARD = "liquibase.windows.2008r2.x64"
	VAGRANT_BOX_NAME_LINUX_STANDARD   = "liquibase.linux.centos.x64"

	LATEST_VERSION = "LATEST"
)

const (
	OBFUSCATE_STRING = "XXXXX"
)

var SupportedDBTypes = []string{POSTGRESQL, YUGABYTEDB, ORACLE, MYSQL, MSSQL, SQLITE}
