/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package main

import (
	"os"

	"github.com/RespectNoodles/HelpBox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
