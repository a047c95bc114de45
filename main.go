package main

import "github.com/kanzihuang/conda-guard/cmd"

func main() {
	cmd.Execute()
}
