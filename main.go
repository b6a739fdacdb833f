package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/generator"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/renderer/ebiten"
	"gridpath/pkg/game/renderer/img"
	"gridpath/pkg/game/renderer/text"
	"gridpath/pkg/game/renderer/tui"
	"gridpath/pkg/game/report"
)

// Exit codes
const (
	exitOK      = 0
	exitInvalid = 1
	exitAnomaly = 2
)

func initRenderers() {
	renderer.Register(tui.New())
	renderer.Register(text.New())
}

func initGettext(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, "default")
}

func main() {
	length := flag.Int("length", world.DefaultLength, "number of columns (y axis)")
	height := flag.Int("height", world.DefaultHeight, "number of rows (x axis)")
	seed := flag.Int64("seed", 0, "random seed for obstacle placement (0 uses the clock)")
	genName := flag.String("generator", "blob", "obstacle generator: blob, lines or empty")
	protectEnds := flag.Bool("protect-ends", false, "never place obstacles on the start or target cell")
	maxSteps := flag.Int("max-steps", 0, "stop the search after this many expansions (0 means no limit)")
	rendererName := flag.String("renderer", "tui", "map output: tui, text or none")
	pngFile := flag.String("png", "", "also write the map as a PNG image to this file")
	window := flag.Bool("window", false, "show the map in a window after printing the report")
	localeDir := flag.String("locale", "", "directory holding <lang>/default.po translations")
	lang := flag.String("lang", "en_US", "language for report labels")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.Enable = false
	}
	initGettext(*localeDir, *lang)
	initRenderers()

	os.Exit(run(options{
		length:       *length,
		height:       *height,
		seed:         *seed,
		generator:    *genName,
		protectEnds:  *protectEnds,
		maxSteps:     *maxSteps,
		rendererName: *rendererName,
		pngFile:      *pngFile,
		window:       *window,
	}))
}

type options struct {
	length, height int
	seed           int64
	generator      string
	protectEnds    bool
	maxSteps       int
	rendererName   string
	pngFile        string
	window         bool
}

func run(opts options) int {
	grid, err := world.NewGrid(opts.length, opts.height)
	if err != nil {
		log.Printf("Cannot create grid: %v", err)
		return exitInvalid
	}

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	var genOpts []generator.Option
	if opts.protectEnds {
		genOpts = append(genOpts, generator.WithProtectedEndpoints())
	}
	gen, ok := generator.ByName(opts.generator, generator.Seeded(opts.seed), genOpts...)
	if !ok {
		log.Printf("Unknown generator %q", opts.generator)
		return exitInvalid
	}
	gen.Generate(grid)
	if msg := grid.Validate(); msg != "" {
		log.Printf("Invalid grid: %s", msg)
		return exitInvalid
	}
	log.Printf("Generated %dx%d grid with %s generator (seed %d): %d wall, %d water",
		grid.Length(), grid.Height(), gen.Name(), opts.seed,
		grid.CountType(world.Wall), grid.CountType(world.Water))

	var findOpts []pathfind.Option
	if opts.maxSteps > 0 {
		findOpts = append(findOpts, pathfind.WithMaxSteps(opts.maxSteps))
	}
	pf := pathfind.New(grid, findOpts...)
	rep := report.Build(grid, pf)
	if pf.Exhausted() {
		log.Printf("Search stopped after %d expansions", pf.Expanded())
	}
	path := pf.ReconstructPath()

	if err := renderMap(opts.rendererName, grid, path); err != nil {
		log.Printf("Cannot render map: %v", err)
		return exitInvalid
	}

	if _, err := rep.WriteTo(os.Stdout); err != nil {
		log.Printf("Cannot write report: %v", err)
		return exitInvalid
	}

	if opts.pngFile != "" {
		if err := img.New().SaveFile(opts.pngFile, grid, path); err != nil {
			log.Printf("Cannot write image: %v", err)
		} else {
			log.Printf("Wrote %s", opts.pngFile)
		}
	}

	if opts.window {
		if err := ebiten.Show(grid, path); err != nil {
			log.Printf("Window closed with error: %v", err)
		}
	}

	if err := rep.Err(); err != nil {
		log.Printf("Path check failed: %v", err)
		return exitAnomaly
	}
	return exitOK
}

func renderMap(name string, grid *world.Grid, path []*world.Cell) error {
	if name == "none" {
		return nil
	}
	r, ok := renderer.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown renderer %q (want one of %s, none)", name, strings.Join(renderer.Names(), ", "))
	}
	renderer.SetRenderer(r)
	if err := renderer.Render(os.Stdout, grid, path); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
