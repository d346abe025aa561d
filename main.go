package main

import (
	"fmt"
	"os"

	"github.com/oakwood-commons/palette/cmd"
	"github.com/oakwood-commons/palette/pkg/logger"
)

func main() {
	err := cmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
