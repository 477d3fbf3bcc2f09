// SPDX-License-Identifier: MPL-2.0

package main

import cmd "pwgen-cli/cmd/pwgen"

func main() {
	cmd.Execute()
}
