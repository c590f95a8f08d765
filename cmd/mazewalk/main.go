package main

import (
	"flag"
	"log"

	"chosenoffset.com/mazewalk/internal/audio"
	"chosenoffset.com/mazewalk/internal/config"
	"chosenoffset.com/mazewalk/internal/game"
	ebitenrender "chosenoffset.com/mazewalk/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "mazewalk.json", "path to a JSON config file")
	seed := flag.Int64("seed", 0, "seed for the first maze (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable music and sound effects")
	debugColliders := flag.Bool("debug-colliders", false, "draw wall colliders")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment override: %v", err)
	}

	// Flags win over the file and the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Maze.Seed = *seed
		case "mute":
			cfg.Audio.Muted = *mute
		case "debug-colliders":
			cfg.Debug.ShowColliders = *debugColliders
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	var sound game.Sound = game.NoSound{}
	if !cfg.Audio.Muted {
		sm := audio.NewSoundManager(audio.Config{
			SampleRate:   cfg.Audio.SampleRate,
			MusicVolume:  cfg.Audio.MusicVolume,
			EffectVolume: cfg.Audio.EffectVolume,
		})
		if err := sm.Initialize(); err != nil {
			log.Printf("Warning: audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	gameManager, err := game.NewManager(cfg, renderer, inputMgr, game.SystemClock{}, sound)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Window.TPS)

	log.Printf("Starting game: %dx%d cells, seed %d", cfg.Cols(), cfg.Rows(), gameManager.BaseSeed())
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
