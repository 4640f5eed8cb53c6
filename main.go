package main

import "github.com/theirongolddev/wordpace/cmd"

func main() {
	cmd.Execute()
}
