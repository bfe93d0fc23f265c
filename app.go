package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/pborman/getopt"

	"github.com/ushitora-anqou/goallegro/config"
	"github.com/ushitora-anqou/goallegro/demo"
	"github.com/ushitora-anqou/goallegro/util"
	"github.com/ushitora-anqou/goallegro/window"
)

func run(newWindow func() (window.Window, error)) error {
	initOnly := getopt.BoolLong("init-only", 'i', "initialize the library and addons, then exit")
	help := getopt.BoolLong("help", 'h', "show this help")
	getopt.Parse()
	if *help {
		getopt.Usage()
		return nil
	}
	if getopt.NArgs() > 0 {
		return fmt.Errorf("unexpected argument %q", getopt.Arg(0))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Trace {
		util.EnableTrace()
	}
	if cfg.CPUProfile != "" {
		file, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	wind, err := newWindow()
	if err != nil {
		return err
	}
	defer wind.Close()
	if *initOnly {
		log.Println("Initialized.")
		return nil
	}

	if err := wind.Open(cfg); err != nil {
		return err
	}
	wind.Start()
	if err := wind.Emit("started"); err != nil {
		return err
	}
	return demo.NewLoop(wind.Queue(), wind, wind.Display()).Run()
}
