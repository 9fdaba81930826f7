// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"rage-room/internal/assets"
	"rage-room/internal/audio"
	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/event"
	"rage-room/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	profilePath := flag.String("profile", "", "path to profile.json (default: OS config dir)")
	weaponsPath := flag.String("weapons", "", "optional JSON file overriding weapon definitions")
	seed := flag.Int64("seed", 0, "random seed, 0 = time based")
	mute := flag.Bool("mute", false, "start with sound off")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	profile := loadProfile(*profilePath)

	arsenal := defs.NewArsenal()
	if *weaponsPath != "" {
		a, err := defs.LoadArsenal(*weaponsPath)
		if err != nil {
			log.Printf("WARNING: %v. Using built-in weapons.", err)
		} else {
			arsenal = a
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	sounds := audio.NewSoundBoard()
	if err := sounds.Initialize(); err != nil {
		log.Printf("WARNING: audio disabled: %v", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(*mute)
	dispatcher.Subscribe(event.HitApplied, sounds)

	sm := state.NewStateMachine()
	sm.SetState(state.NewRoomState(sm, state.RoomOptions{
		Profile:    profile,
		Arsenal:    arsenal,
		Seed:       *seed,
		Dispatcher: dispatcher,
		Fonts:      fonts,
	}))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Rage Room: " + profile.Name)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func loadProfile(path string) config.Profile {
	if path == "" {
		p, err := config.ProfilePath()
		if err != nil {
			log.Printf("WARNING: %v. Using default profile.", err)
			return config.DefaultProfile()
		}
		path = p
	}
	profile, err := config.LoadProfile(path)
	if err != nil {
		log.Printf("WARNING: %v. Using default profile.", err)
	}
	return profile
}
