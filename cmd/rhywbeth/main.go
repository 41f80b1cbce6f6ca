package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/EnokiUN/rhywbeth/game"
)

var (
	mapFlag   = flag.String("map", "", "wall layout file (one \"x1 y1 x2 y2 color\" per line)")
	muteFlag  = flag.Bool("mute", false, "disable audio feedback")
	shadeFlag = flag.Bool("shade", false, "darken walls with distance")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal first so the shell stays usable
	// and the trace is readable after raw mode ends
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\x1b[31mCRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	ctx, err := game.New(screen, game.Config{
		MapPath: *mapFlag,
		Mute:    *muteFlag,
		Shade:   *shadeFlag,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx.Run()
	ctx.Close()
	screen.Fini()
}
