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
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"

	"github.com/yugabyte/yb-objnames/cmd"
	"github.com/yugabyte/yb-objnames/src/utils"
)

func main() {
	exitOnSignal(syscall.SIGINT, syscall.SIGTERM)
	cmd.Execute()
}

// exitOnSignal runs the atexit handlers and exits with 128+signo on any of sigs.
func exitOnSignal(sigs ...os.Signal) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	go func() {
		sig := <-ch
		utils.PrintAndLog("yb-objnames interrupted by %s", sig)
		code := 1
		if signo, ok := sig.(syscall.Signal); ok {
			code = 128 + int(signo)
		}
		atexit.Exit(code)
	}()
}
