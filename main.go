package main

import (
	"github.com/aura-netops/aura/cli"
	_ "github.com/aura-netops/aura/pkg/logger/autoload"
)

func main() {
	cli.Execute()
}
