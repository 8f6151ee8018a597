package main

import "github.com/jduncan017/pourcost/cmd"

func main() {
	cmd.Execute()
}
