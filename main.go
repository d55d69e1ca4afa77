package main

import "github.com/theirongolddev/sobriety/cmd"

func main() {
	cmd.Execute()
}
