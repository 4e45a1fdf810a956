package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-dungeon/config"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/render"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

var (
	configFlag  = flag.String("config", "", "YAML configuration file")
	seedFlag    = flag.Uint64("seed", 0, "Seed override (0 keeps the configured seed)")
	widthFlag   = flag.Int("width", 0, "Width override")
	heightFlag  = flag.Int("height", 0, "Height override")
	countFlag   = flag.Int("count", 1, "Number of consecutive levels to print")
	asciiFlag   = flag.Bool("ascii", false, "Plain ASCII walls instead of box drawing")
	regionsFlag = flag.Bool("regions", false, "Print the region table")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dungeon-gen: ")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *widthFlag > 0 {
		cfg.Level.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Level.Height = *heightFlag
	}
	if err := cfg.Params().Validate(); err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	r := cfg.Source()
	for i := 0; i < *countFlag; i++ {
		start := time.Now()
		l := level.New(r, world.NewRegistry(), geom.SizeX(cfg.Level.Width), geom.SizeY(cfg.Level.Height), cfg.Level.ID+i, cfg.Options()...)
		dur := time.Since(start)

		up, down := l.StairCount()
		fmt.Fprintf(out, "level %d  seed %d  %dx%d  regions %d  stairs %d/%d  in %v\n",
			l.ID(), cfg.Seed, l.Width(), l.Height(), l.RegionCount(), up, down, dur)
		draw(out, l, *asciiFlag)
		if *regionsFlag {
			regions(out, l)
		}
		fmt.Fprintln(out)
	}
}

func draw(w io.Writer, l level.Level, ascii bool) {
	b := l.Bounds()
	for y := b.Y0; y < b.Y1; y++ {
		for x := b.X0; x < b.X1; x++ {
			v := l.At(geom.Point{X: x, Y: y})
			ch := render.TileGlyph(v)
			if ascii && v.Type == tile.TypeWall {
				ch = '#'
			}
			fmt.Fprint(w, string(ch))
		}
		fmt.Fprintln(w)
	}
}

func regions(w io.Writer, l level.Level) {
	fmt.Fprintln(w, "region  bounds               tiles")
	for i := 0; i < l.RegionCount(); i++ {
		r := l.Region(i)
		fmt.Fprintf(w, "%6d  %-19v  %5d\n", r.ID, r.Bounds, r.TileCount)
	}
}
