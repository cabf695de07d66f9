// Command bingen writes binary codecs for the bingen-annotated types of a package.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/plbin/bingen"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "Package directory")
		output  = flag.String("output", "", "Output file (default <package>_bin.go in -dir)")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()

	out, err := bingen.Run(bingen.Config{
		Dir:    *dir,
		Output: *output,
		Logger: log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "bingen: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Println(out)
	}
}
