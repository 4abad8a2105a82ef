package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"automata/src/animation"
	"automata/src/universe"
	"automata/src/view"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	o := initOptions()

	ui := view.NewConsoleUI()
	driver := animation.NewDriver(o, ui)

	//an interrupt must end up as a clean exit with the terminal restored
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		driver.Stop()
		ui.Stop()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- driver.Run()
		ui.Stop()
	}()

	ui.Start()
	driver.Stop()

	if err := <-errCh; err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initOptions() universe.Options {
	o := universe.DefaultOptions

	live := string(o.Live)
	dead := string(o.Dead)
	fill := string(o.Fill)
	templateNames := make([]string, 0, len(universe.BuiltinTemplates))
	for _, tmpl := range universe.BuiltinTemplates {
		templateNames = append(templateNames, tmpl.Name)
	}

	flaggy.SetName("automata")
	flaggy.SetDescription("Cellular automata in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Width, "x", "width", "Width of the universe")
	flaggy.Int(&o.Height, "y", "height", "Height of the universe")
	flaggy.Bool(&o.AutoSize, "a", "auto-size", "Set universe size to the terminal width and height")
	flaggy.Float64(&o.Rate, "r", "rate", "Generations per second")
	flaggy.Int(&o.Cells, "c", "cells", "Number of initial live cells (default: half of the universe)")
	flaggy.String(&live, "l", "live", "Live cell character")
	flaggy.String(&dead, "d", "dead", "Dead cell character")
	flaggy.String(&fill, "f", "fill", "Fill character placed between cells")
	flaggy.Bool(&o.Wrap, "w", "wrap", "Wrap cells around the universe (NOT IMPLEMENTED YET)")
	flaggy.String(&o.InFile, "i", "in-file", "Read the initial universe state from a file")
	flaggy.String(&o.Template, "t", "template", "Seed with a built-in template ["+strings.Join(templateNames, "|")+"]")
	flaggy.Bool(&o.Repeat, "R", "repeat", "Re-seed the universe and restart when a halt is detected")
	flaggy.Float64(&o.Delay, "D", "delay", "Number of seconds to wait before restarting")
	flaggy.Bool(&o.Eternal, "E", "eternal", "Keep running even if a universe halt is detected (overrides -R)")
	flaggy.Bool(&o.Quiet, "q", "quiet", "Don't show info messages")

	flaggy.Parse()

	if !o.AutoSize && (o.Width <= 0 || o.Height <= 0) {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	if o.Rate <= 0 {
		flaggy.ShowHelpAndExit("rate must be positive")
	}
	if o.Delay < 0 {
		flaggy.ShowHelpAndExit("delay must not be negative")
	}

	o.Live = firstRune(live, universe.DefaultOptions.Live)
	o.Dead = firstRune(dead, universe.DefaultOptions.Dead)
	o.Fill = firstRune(fill, universe.DefaultOptions.Fill)
	return o
}

//firstRune extracts the glyph from a flag value, falling back to the
//default when the value is empty
func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}
