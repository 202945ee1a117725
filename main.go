package main

import "filestorage/cmd"

func main() {
	cmd.Execute()
}
