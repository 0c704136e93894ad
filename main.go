package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/prefabs"
	"github.com/milk9111/skystrike/system"
)

func main() {
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .json optional)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "draw hitboxes and log frame events")
	dev := flag.Bool("dev", false, "watch prefabs/ and restart the level when a prefab changes")
	mute := flag.Bool("mute", false, "start with music and effects muted")
	flag.Parse()

	if *seed == 0 {
		*seed = seedFromClock()
	}

	cat, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	scene := newSceneGraph()
	sound := newToneSound(*mute)

	campaign, err := system.NewCampaign(*levelName, system.Config{
		Catalog: cat,
		Seed:    *seed,
		Scene:   scene,
		Sound:   sound,
	}, nil)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("skystrike: level=%s seed=%d", *levelName, *seed)

	var watcher *prefabs.Watcher
	if *dev {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("skystrike")
	ebiten.SetTPS(common.TicksPerSecond)

	game := NewGame(campaign, scene, sound, watcher, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func seedFromClock() int64 {
	return time.Now().UnixNano()
}
