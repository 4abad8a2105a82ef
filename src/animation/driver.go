package animation

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"automata/src/universe"
)

//Renderer is the display surface the driver paints each generation to.
//DrawRow and DrawStatus stage content for the next Refresh; rows the
//display cannot fit are dropped silently
type Renderer interface {
	Clear()
	DrawRow(y int, text string)
	DrawStatus(text string)
	Refresh()
	WaitForKey()
	Size() (cols int, rows int)
}

//Driver advances a universe at a fixed rate and applies the halt policy:
//wait for a key and stop, pause and restart with a fresh universe, or run
//forever ignoring halts.
//It owns exactly one universe at a time and replaces it wholesale on a
//restart
type Driver struct {
	options  universe.Options
	r        Renderer
	seed     func(o *universe.Options) (*universe.Universe, error)
	stopCh   chan struct{}
	stopOnce sync.Once
}

//NewDriver creates the driver for the given options and display surface
func NewDriver(o universe.Options, r Renderer) *Driver {
	return &Driver{
		options: o,
		r:       r,
		seed:    universe.Seed,
		stopCh:  make(chan struct{}),
	}
}

//Stop asks the driver to leave its loop; safe to call from another
//goroutine and more than once
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})
}

//Run seeds a universe and loops render, advance, sleep until the halt
//policy terminates the animation or Stop is called.
//A seeding error (for example OverpopulationError) is returned before
//any frame is drawn
func (d *Driver) Run() error {
	o := d.options
	if o.AutoSize {
		o.Width, o.Height = d.r.Size()
	}
	interval := time.Duration(float64(time.Second) / o.Rate)
	delay := time.Duration(o.Delay * float64(time.Second))

	for {
		u, err := d.seed(&o)
		if err != nil {
			return err
		}
		start := time.Now()

		for {
			if d.stopped() {
				return nil
			}
			d.drawFrame(u)

			err := u.Advance(o.Eternal)
			var halted *universe.HaltedError
			if errors.As(err, &halted) {
				elapsed := time.Since(start)
				if o.Repeat {
					if !o.Quiet {
						d.showHalt(halted, elapsed, "")
					}
					if !d.sleep(delay) {
						return nil
					}
					break //re-seed a fresh universe
				}
				if !o.Quiet {
					d.showHalt(halted, elapsed, "Press any key to exit")
				}
				d.r.WaitForKey()
				return nil
			} else if err != nil {
				return err
			}

			if !d.sleep(interval) {
				return nil
			}
		}
	}
}

//drawFrame paints the whole grid, one text row per grid row
func (d *Driver) drawFrame(u *universe.Universe) {
	d.r.Clear()
	g := u.Grid()
	for y := 0; y < g.Height; y++ {
		d.r.DrawRow(y, d.rowText(g.Row(y)))
	}
	d.r.Refresh()
}

//rowText renders a grid row with the configured glyphs,
//cells are joined with the fill glyph
func (d *Driver) rowText(row []universe.Cell) string {
	var b strings.Builder
	for x, cell := range row {
		if x != 0 {
			b.WriteRune(d.options.Fill)
		}
		if cell == universe.Live {
			b.WriteRune(d.options.Live)
		} else {
			b.WriteRune(d.options.Dead)
		}
	}
	return b.String()
}

func (d *Driver) showHalt(halted *universe.HaltedError, elapsed time.Duration, prompt string) {
	msg := fmt.Sprintf("Universe halted after %v generations (%.2fs)", halted.Generations, elapsed.Seconds())
	if prompt != "" {
		msg += ". " + prompt
	}
	d.r.DrawStatus(msg)
	d.r.Refresh()
}

func (d *Driver) stopped() bool {
	select {
	case <-d.stopCh:
		return true
	default:
		return false
	}
}

//sleep waits for the duration, reports false when the driver was stopped
//in the meantime
func (d *Driver) sleep(dur time.Duration) bool {
	if dur <= 0 {
		return !d.stopped()
	}
	select {
	case <-d.stopCh:
		return false
	case <-time.After(dur):
		return true
	}
}
