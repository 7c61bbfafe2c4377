package main

import (
	"context"
	"fmt"
	"os"

	"menuvox/internal/app"
)

func main() {
	cfg, err := app.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "menuvox:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "menuvox:", err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "menuvox:", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "menuvox:", err)
		os.Exit(1)
	}
}
