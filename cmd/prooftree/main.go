// Command prooftree computes proof tree roots for flat JSON documents,
// produces selectively disclosed record lists,
// and verifies record lists against an expected root.
//
// Usage:
//
//	prooftree root DOCUMENT.json
//	prooftree disclose -reveal key1,key2 [-framed] DOCUMENT.json > records
//	prooftree verify -root HEX [-framed] RECORDS
//
// A document is a JSON object whose values are all strings.
// A path of "-" reads standard input.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
