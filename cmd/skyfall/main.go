package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/skyfall/audio"
	"github.com/lixenwraith/skyfall/config"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/game"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/ui"
)

var (
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/skyfall.log and show the status overlay")
	configFlag      = flag.String("config", parameter.DefaultConfigFile, "Settings file (TOML), missing file uses defaults")
	structuresFlag  = flag.String("structures", "", "Directory of extra spawn structures (overrides settings)")
	sequenceFlag    = flag.String("sequence", "", "Structure file played at the start of every run (overrides settings)")
	scoresFlag      = flag.String("scores", "", "High score file (overrides settings)")
	muteFlag        = flag.Bool("mute", false, "Start with audio muted")
	seedFlag        = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective settings to -config and exit")
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "skyfall: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	// Panic recovery for the main goroutine; UI registers its own teardown
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fatal("%v", err)
	}
	if *structuresFlag != "" {
		settings.StructuresDir = *structuresFlag
	}
	if *sequenceFlag != "" {
		settings.SequenceFile = *sequenceFlag
	}
	if *scoresFlag != "" {
		settings.ScoreFile = *scoresFlag
	}
	if *muteFlag {
		settings.Mute = true
	}

	if *writeConfigFlag {
		if err := config.Save(*configFlag, settings); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("settings written to %s\n", *configFlag)
		return
	}

	structures, err := spawn.LoadDir(settings.StructuresDir)
	if err != nil {
		fatal("structures: %v", err)
	}

	var sequence *spawn.Structure
	if settings.SequenceFile != "" {
		s, err := spawn.LoadFile(settings.SequenceFile)
		if err != nil {
			fatal("sequence: %v", err)
		}
		sequence = &s
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := game.Options{
		Settings:   settings,
		Seed:       seed,
		Structures: structures,
		Sequence:   sequence,
	}

	// Audio failure is not fatal, the game runs silent
	soundManager := audio.NewSoundManager()
	if err := soundManager.Initialize(); err != nil {
		log.Printf("[main] audio unavailable: %v", err)
	} else {
		opts.Audio = soundManager
		defer soundManager.Cleanup()
	}

	g, err := game.New(opts)
	if err != nil {
		fatal("%v", err)
	}

	app := ui.New(g, *debugFlag)
	if err := app.Run(); err != nil {
		fatal("%v", err)
	}
}
