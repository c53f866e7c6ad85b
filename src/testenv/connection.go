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
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/yb-objnames/src/constants"
)

func (env *Environment) hostPort() string {
	if env.Port == 0 {
		return env.Host
	}
	return net.JoinHostPort(env.Host, strconv.Itoa(env.Port))
}

// ConnectionURL is the URL form of the standard user's connection string.
func (env *Environment) ConnectionURL() string {
	return env.connectionURL(url.UserPassword(env.Username, env.Password))
}

func (env *Environment) connectionURL(user *url.Userinfo) string {
	switch env.DBType {
	case constants.POSTGRESQL, constants.YUGABYTEDB:
		u := url.URL{Scheme: "postgresql", User: user, Host: env.hostPort(), Path: "/" + env.DatabaseName}
		return u.String()
	case constants.MYSQL:
		u := url.URL{Scheme: "mysql", User: user, Host: env.hostPort(), Path: "/" + env.DatabaseName}
		return u.String()
	case constants.ORACLE:
		u := url.URL{Scheme: "oracle", User: user, Host: env.hostPort(), Path: "/" + env.DatabaseName}
		return u.String()
	case constants.MSSQL:
		u := url.URL{Scheme: "sqlserver", User: user, Host: env.hostPort(),
			RawQuery: url.Values{"database": {env.DatabaseName}}.Encode()}
		return u.String()
	case constants.SQLITE:
		return fmt.Sprintf("file:%s.db", env.DatabaseName)
	default:
		panic("unknown db type " + env.DBType)
	}
}

/*
DSN returns the connection string in the form the native Go driver of the db
type expects:

	postgresql, yugabytedb: dbname='lbcat' host='vagrant' password='lbuser' port='5432' user='lbuser'
	mysql:                  lbuser:lbuser@tcp(vagrant:3306)/lbcat

Other db types use ConnectionURL().
*/
func (env *Environment) DSN() (string, error) {
	switch env.DBType {
	case constants.POSTGRESQL, constants.YUGABYTEDB:
		dsn, err := pq.ParseURL(env.ConnectionURL())
		if err != nil {
			return "", fmt.Errorf("convert %s connection url to dsn: %w", env.DBType, err)
		}
		return dsn, nil
	case constants.MYSQL:
		cfg := mysql.NewConfig()
		cfg.User = env.Username
		cfg.Passwd = env.Password
		cfg.Net = "tcp"
		cfg.Addr = env.hostPort()
		cfg.DBName = env.DatabaseName
		return cfg.FormatDSN(), nil
	default:
		log.Debugf("no driver specific dsn for %s, using connection url", env.DBType)
		return env.ConnectionURL(), nil
	}
}

// RedactedConnectionURL masks the password for log and console output.
func (env *Environment) RedactedConnectionURL() string {
	if env.DBType == constants.SQLITE {
		return env.ConnectionURL()
	}
	return env.connectionURL(url.UserPassword(env.Username, constants.OBFUSCATE_STRING))
}
