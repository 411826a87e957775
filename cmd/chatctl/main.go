package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.FgRed.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
