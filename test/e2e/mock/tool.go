// SPDX-FileCopyrightText: 2025 GSI Helmholtzzentrum für Schwerionenforschung GmbH
//
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The mock prints its name, its arguments and how many bytes it could read
// from stdin. If the last argument is "exit=N" it exits with code N.
func main() {
	toolName := filepath.Base(os.Args[0])
	args := os.Args[1:]

	fmt.Printf("MOCK-%s-EXECUTED\n", strings.ToUpper(toolName))

	for i, arg := range args {
		fmt.Printf("ARG[%d]: %s\n", i, arg)
	}

	stdin, _ := io.ReadAll(os.Stdin) //nolint:errcheck // count whatever is readable
	fmt.Printf("STDIN: %d\n", len(stdin))

	if len(args) > 0 {
		if code, found := strings.CutPrefix(args[len(args)-1], "exit="); found {
			n, err := strconv.Atoi(code)
			if err != nil {
				fmt.Fprintln(os.Stderr, "bad exit code:", code)
				os.Exit(99)
			}

			os.Exit(n)
		}
	}
}
