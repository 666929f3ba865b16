// Command fasturi parses, builds and splits URIs from the command line.
//
// Usage:
//
//	fasturi parse [--params] <uri>...
//	fasturi build --scheme=https --host=example.com --port=8443 --path=/foo --param a=1 --param b
//	fasturi params [--max=N] <uri>
//
// The output format is selected with --output (text or yaml). The default
// may be set via FASTURI_OUTPUT environment variable.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
