package main

import "habitbuilder/cmd/hb/root"

func main() {
	root.Execute()
}
