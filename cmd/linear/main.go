package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cobra.CheckErr(NewCLI(newLogger).ExecuteContext(context.Background()))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
