//go:build ignore
// +build ignore

package main

import (
	"log"

	gyani "github.com/mithrel/gyani/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := gyani.NewRootCmd()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "GYANI-CLI",
		Section: "1",
		Source:  "gyani",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
