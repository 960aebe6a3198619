package main

import "github.com/frahmantamala/manager-dashboard/cmd"

func main() {
	cmd.Execute()
}
