package animation

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"automata/src/universe"
)

//fakeRenderer records the driver's calls instead of touching a terminal
type fakeRenderer struct {
	mu       sync.Mutex
	frames   int
	statuses []string
	keyWaits int
	cols     int
	rows     int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{cols: 80, rows: 24}
}

func (f *fakeRenderer) Clear() {
	f.mu.Lock()
	f.frames++
	f.mu.Unlock()
}

func (f *fakeRenderer) DrawRow(int, string) {}

func (f *fakeRenderer) DrawStatus(text string) {
	f.mu.Lock()
	f.statuses = append(f.statuses, text)
	f.mu.Unlock()
}

func (f *fakeRenderer) Refresh() {}

func (f *fakeRenderer) WaitForKey() {
	f.mu.Lock()
	f.keyWaits++
	f.mu.Unlock()
}

func (f *fakeRenderer) Size() (int, int) {
	return f.cols, f.rows
}

func (f *fakeRenderer) frameCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *fakeRenderer) keyWaitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keyWaits
}

func (f *fakeRenderer) statusLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.statuses...)
}

//blockOptions describe a universe that halts on the first advance
func blockOptions() universe.Options {
	o := universe.DefaultOptions
	o.Width = 6
	o.Height = 6
	o.Rate = 1000
	o.Delay = 0
	o.Template = "block"
	return o
}

func TestDriverWaitsForKeyAfterHalt(t *testing.T) {
	r := newFakeRenderer()
	d := NewDriver(blockOptions(), r)

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := r.keyWaitCount(); got != 1 {
		t.Errorf("want one blocking key wait, got %v", got)
	}
	statuses := r.statusLog()
	if len(statuses) != 1 {
		t.Fatalf("want one halt message, got %v", statuses)
	}
	if !strings.Contains(statuses[0], "halted after 1 generations") {
		t.Errorf("halt message must carry the generation count, got %q", statuses[0])
	}
	if !strings.Contains(statuses[0], "Press any key") {
		t.Errorf("terminal halt must prompt for a key, got %q", statuses[0])
	}
}

func TestDriverQuietSuppressesMessagesOnly(t *testing.T) {
	o := blockOptions()
	o.Quiet = true
	r := newFakeRenderer()
	d := NewDriver(o, r)

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if statuses := r.statusLog(); len(statuses) != 0 {
		t.Errorf("quiet mode must not show messages, got %v", statuses)
	}
	if got := r.keyWaitCount(); got != 1 {
		t.Errorf("quiet mode must still wait for a key, got %v waits", got)
	}
}

func TestDriverRepeatSeedsFreshUniverse(t *testing.T) {
	o := blockOptions()
	o.Repeat = true
	o.Quiet = true
	r := newFakeRenderer()
	d := NewDriver(o, r)

	var universes []*universe.Universe
	d.seed = func(o *universe.Options) (*universe.Universe, error) {
		u, err := universe.Seed(o)
		if err != nil {
			return nil, err
		}
		if u.Generations() != 0 {
			t.Errorf("re-seeded universe must start at generation 0, got %v", u.Generations())
		}
		universes = append(universes, u)
		if len(universes) == 3 {
			d.Stop()
		}
		return u, nil
	}

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(universes) < 2 {
		t.Fatalf("repeat mode must restart after a halt, got %v run(s)", len(universes))
	}
	if universes[0] == universes[1] {
		t.Error("a restart must replace the universe, not reset it")
	}
	if got := universes[0].Generations(); got != 1 {
		t.Errorf("the halted universe keeps its final counter, want 1, got %v", got)
	}
	if got := r.keyWaitCount(); got != 0 {
		t.Errorf("repeat mode must never block on a key, got %v waits", got)
	}
}

func TestDriverRepeatShowsHaltMessage(t *testing.T) {
	o := blockOptions()
	o.Repeat = true
	r := newFakeRenderer()
	d := NewDriver(o, r)

	seeds := 0
	d.seed = func(o *universe.Options) (*universe.Universe, error) {
		seeds++
		if seeds == 2 {
			d.Stop()
		}
		return universe.Seed(o)
	}

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	statuses := r.statusLog()
	if len(statuses) == 0 {
		t.Fatal("repeat mode without quiet must show the halt message")
	}
	if strings.Contains(statuses[0], "Press any key") {
		t.Errorf("repeat mode must not prompt for a key, got %q", statuses[0])
	}
}

func TestDriverEternalIgnoresHalts(t *testing.T) {
	o := blockOptions()
	o.Eternal = true
	r := newFakeRenderer()
	d := NewDriver(o, r)

	done := make(chan error, 1)
	go func() {
		done <- d.Run()
	}()

	deadline := time.After(5 * time.Second)
	for r.frameCount() < 5 {
		select {
		case <-deadline:
			t.Fatal("eternal driver did not keep producing frames")
		case <-time.After(time.Millisecond):
		}
	}
	d.Stop()

	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if statuses := r.statusLog(); len(statuses) != 0 {
		t.Errorf("eternal mode must never show a halt, got %v", statuses)
	}
	if got := r.keyWaitCount(); got != 0 {
		t.Errorf("eternal mode must never wait for a key, got %v waits", got)
	}
}

func TestDriverSeedErrorAbortsBeforeAnimation(t *testing.T) {
	o := blockOptions()
	o.Template = ""
	o.Cells = o.Width * o.Height //overpopulated on purpose
	r := newFakeRenderer()
	d := NewDriver(o, r)

	err := d.Run()
	var over *universe.OverpopulationError
	if !errors.As(err, &over) {
		t.Fatalf("want OverpopulationError from Run, got %v", err)
	}
	if got := r.frameCount(); got != 0 {
		t.Errorf("no frame may be drawn before seeding succeeds, got %v", got)
	}
}

func TestDriverAutoSizeUsesTerminal(t *testing.T) {
	o := blockOptions()
	o.AutoSize = true
	r := newFakeRenderer()
	r.cols, r.rows = 12, 7
	d := NewDriver(o, r)

	var seeded universe.Options
	d.seed = func(o *universe.Options) (*universe.Universe, error) {
		seeded = *o
		return universe.Seed(o)
	}

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if seeded.Width != 12 || seeded.Height != 7 {
		t.Errorf("auto-size must seed with the terminal dimensions, got %vx%v", seeded.Width, seeded.Height)
	}
}
