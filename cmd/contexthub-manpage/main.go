package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/seshanpillay25/contexthub/cmd/contexthub"
	"github.com/seshanpillay25/contexthub/internal/version"
)

func main() {
	rootCmd := contexthub.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CONTEXTHUB",
		Section: "1",
		Source:  "contexthub " + version.Version,
		Manual:  "contexthub manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
