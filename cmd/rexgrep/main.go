// Command rexgrep is an illustrative, non-normative driver over the rex
// engine (spec §6): argument parsing, exit codes, and line formatting here
// are external collaborators, not part of the core contract.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/coregx/rex"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <pattern> <input>\n", os.Args[0])
		os.Exit(1)
	}

	pattern, input := os.Args[1], os.Args[2]

	re, err := rex.Compile(pattern)
	if err != nil {
		log.Printf("rexgrep: %v", err)
		os.Exit(1)
	}

	matches := re.FindAll([]byte(input))
	for _, m := range matches {
		fmt.Printf("%s: %q\n", pattern, input[m.Offset:m.Offset+m.Length])
	}
	os.Exit(0)
}
