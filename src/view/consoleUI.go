package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key     interface{}
	handler func(g *gocui.Gui, v *gocui.View) error
}

//ConsoleUI paints universe frames into a full-screen gocui view.
//The animation driver calls it from its own goroutine; every paint is
//handed to the gocui main loop through Gui.Update, so the terminal is
//touched only by the main goroutine
type ConsoleUI struct {
	g *gocui.Gui

	mu     sync.Mutex
	rows   []string
	status string

	keyCh     chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewConsoleUI() *ConsoleUI {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t := &ConsoleUI{
		g:     g,
		keyCh: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	g.SetManagerFunc(t.layout)

	k := []keyBinding{
		{gocui.KeyCtrlC, t.cmdQuit},
		{gocui.KeyEnter, t.cmdKeyPress},
		{gocui.KeySpace, t.cmdKeyPress},
		{gocui.KeyEsc, t.cmdKeyPress},
		{'q', t.cmdKeyPress},
	}
	for _, kb := range k {
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, kb.handler); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

//Start runs the terminal main loop on the calling goroutine and returns
//when the UI is closed
func (t *ConsoleUI) Start() {
	err := t.g.MainLoop()
	t.closeOnce.Do(func() {
		close(t.done)
	})
	t.g.Close()
	if err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

//Stop closes the terminal main loop; safe to call from another goroutine
func (t *ConsoleUI) Stop() {
	t.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Clear drops the staged frame content
func (t *ConsoleUI) Clear() {
	t.mu.Lock()
	t.rows = t.rows[:0]
	t.status = ""
	t.mu.Unlock()
}

//DrawRow stages the text of row y for the next Refresh
func (t *ConsoleUI) DrawRow(y int, text string) {
	if y < 0 {
		return
	}
	t.mu.Lock()
	for len(t.rows) <= y {
		t.rows = append(t.rows, "")
	}
	t.rows[y] = text
	t.mu.Unlock()
}

//DrawStatus stages a status message shown over the first row of the frame
func (t *ConsoleUI) DrawStatus(text string) {
	t.mu.Lock()
	t.status = aurora.Colorize(text, aurora.WhiteFg|aurora.RedBg).String()
	t.mu.Unlock()
}

//Refresh paints the staged frame
//rows outside the viewing area are discarded
func (t *ConsoleUI) Refresh() {
	t.mu.Lock()
	rows := append([]string(nil), t.rows...)
	status := t.status
	t.mu.Unlock()

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("universe")
		if e != nil {
			//the layout has not created the view yet, skip this frame
			return nil
		}
		v.Clear()
		maxW, maxH := v.Size()

		var b bytes.Buffer
		for y, row := range rows {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if y == 0 && status != "" {
				b.WriteString(status)
				continue
			}
			b.WriteString(cropRow(row, maxW))
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

//WaitForKey blocks until one of the bound keys is pressed or the UI
//shuts down
func (t *ConsoleUI) WaitForKey() {
	select {
	case <-t.keyCh:
	case <-t.done:
	}
}

//Size returns the terminal size in character cells
func (t *ConsoleUI) Size() (int, int) {
	return t.g.Size()
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("universe", -1, -1, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdKeyPress(_ *gocui.Gui, _ *gocui.View) error {
	select {
	case t.keyCh <- struct{}{}:
	default:
	}
	return nil
}

func cropRow(row string, maxW int) string {
	r := []rune(row)
	if len(r) <= maxW {
		return row
	}
	return string(r[:maxW])
}
