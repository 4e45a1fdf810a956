package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-dungeon/audio"
	"github.com/lixenwraith/vi-dungeon/config"
	"github.com/lixenwraith/vi-dungeon/render"
)

var (
	configFlag = flag.String("config", "", "YAML configuration file")
	seedFlag   = flag.Uint64("seed", 0, "Seed override (0 keeps the configured seed)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Write logs/dungeon-view.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dungeon-view: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	log.Printf("seed %d, level %dx%d", cfg.Seed, cfg.Level.Width, cfg.Level.Height)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "dungeon-view crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled && !*muteFlag {
		if err := sound.Init(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sound.Close()

	game := NewGame(cfg, sound)
	defer game.Close()

	run(screen, game)
}

// run draws after every event until the player quits
func run(screen tcell.Screen, game *Game) {
	renderer := render.NewTerminalRenderer(screen, game.Style)
	for {
		renderer.RenderFrame(game.Level(), game.Position(), game.Status())

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			act, v := command(ev)
			switch act {
			case actQuit:
				return
			case actMove:
				game.Step(v)
			case actWait:
				game.Wait()
			case actPickup:
				game.Pickup()
			case actDrop:
				game.Drop()
			case actDescend:
				game.Descend()
			}
		}
	}
}
