package main

import (
	"github.com/dogeorg/wifirefresh/cmd/wifirefresh/cmd"
)

func main() {
	cmd.Execute()
}
