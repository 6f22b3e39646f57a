package main

import (
	"fmt"
	"os"

	"github.com/yumiuse/lexilevel/cmd"
	"github.com/yumiuse/lexilevel/internal"
	"github.com/yumiuse/lexilevel/internal/config"
	"github.com/yumiuse/lexilevel/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}

	db, err := internal.OpenCacheDB(cfg)
	if err != nil {
		// The cache is optional; predictions still work from the CSV.
		logger.Warn("corpus cache unavailable: %v", err)
		db = nil
	}
	if db != nil {
		defer db.Close()
	}

	if err := cmd.Execute(cfg, db); err != nil {
		os.Exit(1)
	}
}
