// Command syntax-frame builds the Syntax Frame VS Code global snippet file
// from the per-language files in snippets/.
package main

import "github.com/syntax-frame/syntax-frame/cmd"

//go:generate go run . generate

func main() {
	cmd.Execute()
}
