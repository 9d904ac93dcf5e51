// Command sketchren keeps the example sketch trees tidy: "normalize" names
// each lone sketch after its directory and "renumber" rewrites the sequence
// numbers in marked file names.
package main

import "github.com/beckbria/sketchren/internal/cmd"

func main() {
	cmd.Execute()
}
