package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

var (
	themeFlag = flag.String("theme", "", "starting theme (empty for default; 'list' to print)")
	trackFlag = flag.String("track", "sunrise-loop", "circuit to race")
	lapsFlag  = flag.Int("laps", constants.DefaultLaps, "laps per race")
)

func main() {
	// Panic recovery: restore the terminal to a sane state before the
	// error and stack reach stderr
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[0m\x1b[?25h")
			fmt.Fprintf(os.Stderr, "\nroad-fighter crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	themes := theme.NewDefaultRegistry()
	if *themeFlag == "list" {
		fmt.Println(strings.Join(themes.NamesSorted(), "\n"))
		return
	}
	if *themeFlag != "" {
		themes.SetTheme(*themeFlag)
	}

	build, ok := track.Circuits[*trackFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown track %q, available:\n", *trackFlag)
		for name := range track.Circuits {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	laps := *lapsFlag
	if laps < 1 {
		laps = 1
	}
	game := engine.NewGame(screen, themes, build(), laps)
	game.Run()
}
