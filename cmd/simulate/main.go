package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/manager"
	"github.com/milk9111/skystrike/prefabs"
	"github.com/milk9111/skystrike/system"
	"gopkg.in/yaml.v3"
)

type levelSummary struct {
	Name   string `yaml:"name"`
	Frames int    `yaml:"frames"`
	State  string `yaml:"state"`
	Kills  int    `yaml:"kills"`
	Score  int    `yaml:"score"`
	Health int    `yaml:"health"`
	Events int    `yaml:"events"`
}

type summary struct {
	Seed   int64              `yaml:"seed"`
	Frames int                `yaml:"frames"`
	Levels []levelSummary     `yaml:"levels"`
	Final  event.FrameReport  `yaml:"final"`
	Counts map[event.Kind]int `yaml:"event_counts"`
}

func main() {
	levelName := flag.String("level", "level1", "level to start from")
	seed := flag.Int64("seed", 1, "random seed")
	frames := flag.Int("frames", 6000, "maximum frames to simulate")
	follow := flag.Bool("campaign", true, "continue into the next level when one is cleared")
	out := flag.String("out", "", "write the YAML summary to this file instead of stdout")
	verbose := flag.Bool("v", false, "log every frame event")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("simulate: ")

	cat, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	c, err := system.NewCampaign(*levelName, system.Config{Catalog: cat, Seed: *seed}, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	sum := run(c, *frames, *follow, *verbose)
	sum.Seed = *seed

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sum); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}

func run(c *system.Campaign, frames int, follow, verbose bool) summary {
	sum := summary{Counts: map[event.Kind]int{}}
	pilot := &autopilot{}
	cur := levelSummary{Name: c.Name()}
	c.Level().Start()

	for i := 0; i < frames; i++ {
		pilot.steer(c)
		r, err := c.Tick()
		if err != nil {
			log.Printf("frame %d: %v", i, err)
			break
		}
		sum.Frames++
		cur.Frames++
		cur.Events += len(r.Events)
		for _, e := range r.Events {
			sum.Counts[e.Kind]++
			if verbose {
				log.Printf("%s frame %d: %s actor=%s amount=%d %s", r.Level, e.Frame, e.Kind, e.Actor, e.Amount, e.Detail)
			}
		}
		sum.Final = r

		if r.NextLevel == "" && r.State != manager.StateWin.String() && r.State != manager.StateGameOver.String() {
			continue
		}
		cur.State, cur.Kills, cur.Score, cur.Health = r.State, r.Kills, r.Score, r.Health
		sum.Levels = append(sum.Levels, cur)
		log.Printf("%s ended %s after %d frames (kills=%d score=%d)", cur.Name, cur.State, cur.Frames, cur.Kills, cur.Score)

		if r.NextLevel == "" || !follow {
			return sum
		}
		cur = levelSummary{Name: c.Name()}
		c.Level().Start()
	}
	cur.State = sum.Final.State
	cur.Kills, cur.Score, cur.Health = sum.Final.Kills, sum.Final.Score, sum.Final.Health
	sum.Levels = append(sum.Levels, cur)
	return sum
}
