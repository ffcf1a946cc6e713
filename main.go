package main

import "github.com/Alijeyrad/dental_backend/cmd"

func main() {
	cmd.Execute()
}
