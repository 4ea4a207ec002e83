package main

import (
	"github.com/goodglamm/g3util/core/g3cmd"
)

func main() {
	g3cmd.Execute()
}
