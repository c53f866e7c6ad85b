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
	"os"
	"path/filepath"

	goerrors "github.com/go-errors/errors"
)

func FileOrFolderExists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		} else {
			panic(err)
		}
	} else {
		return true
	}
}

// EnsureParentDir creates the directory that will hold path if it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if FileOrFolderExists(dir) {
		return nil
	}
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return goerrors.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
