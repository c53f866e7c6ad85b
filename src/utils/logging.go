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
package utils

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

var (
	// ErrExitErr is the error of the last ErrExit call.
	ErrExitErr error

	exitHook = atexit.Exit
)

// SetExitHook makes ErrExit call h instead of atexit.Exit. nil restores atexit.Exit.
func SetExitHook(h func(code int)) {
	if h == nil {
		h = atexit.Exit
	}
	exitHook = h
}

// ErrExit reports a command failure on stderr and in the log, then exits with status 1.
// format may wrap errors with %w.
func ErrExit(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	ErrExitErr = err
	fmt.Fprintln(os.Stderr, err)
	log.Error(err)
	exitHook(1)
}

// PrintAndLog writes one line to stdout and the same message to the log at info level.
func PrintAndLog(format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	log.Info(msg)
	fmt.Println(msg)
}
