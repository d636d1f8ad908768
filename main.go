package main

import (
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
