// Command figterm animates exercise figures in the terminal.
//
// Keys: space pauses and resumes, g cycles the gender variant, q or Esc
// quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/catalog"
	"github.com/gogpu/figure/illustrate"
)

func main() {
	var (
		exercises = flag.String("exercises", "straight_leg_raise,shoulder_abduction,bridge", "comma-separated exercise ids")
		gender    = flag.String("gender", "neutral", "gender variant: male, female or neutral")
		sound     = flag.Bool("sound", false, "play a tone at the top of each motion")
		logPath   = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "figterm:", err)
		os.Exit(1)
	}
	defer closeLog()
	figure.SetLogger(logger)

	var ids []string
	for _, id := range strings.Split(*exercises, ",") {
		id = strings.TrimSpace(id)
		if _, ok := catalog.Get(id); !ok {
			fmt.Fprintf(os.Stderr, "figterm: unknown exercise %q\n", id)
			os.Exit(1)
		}
		ids = append(ids, id)
	}

	var tone *cue
	if *sound {
		// Audio is optional; the animation runs without it.
		if tone, err = newCue(); err != nil {
			logger.Warn("audio unavailable", slog.String("error", err.Error()))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "figterm:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "figterm:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx := illustrate.New(
		illustrate.WithGender(figure.ParseGender(*gender)),
		illustrate.WithLogger(logger),
	)
	var lock sync.Mutex
	mount := func() {
		lock.Lock()
		screen.Clear()
		cols, rows := screen.Size()
		lock.Unlock()
		width := cols / len(ids)
		for i, id := range ids {
			ex, _ := catalog.Get(id)
			ctx.Mount(&screenTarget{
				id:       fmt.Sprintf("term-%d", i),
				exercise: id,
				label:    ex.Name,
				screen:   screen,
				lock:     &lock,
				area:     region{x: i * width, y: 0, cols: width, rows: max(rows-2, 1)},
				onPeak:   tone.Play,
			})
		}
	}
	mount()
	ctx.StartAnimations()
	defer ctx.StopAnimations()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				if ctx.Running() {
					ctx.StopAnimations()
				} else {
					ctx.StartAnimations()
				}
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'g':
				ctx.SetGender(nextGender(ctx.Gender()))
			}
		case *tcell.EventResize:
			lock.Lock()
			screen.Sync()
			lock.Unlock()
			mount()
		}
	}
}

func nextGender(g figure.Gender) figure.Gender {
	switch g {
	case figure.Neutral:
		return figure.Female
	case figure.Female:
		return figure.Male
	default:
		return figure.Neutral
	}
}

// openLog returns a logger writing to path, or a silent one when path is
// empty. The terminal itself is owned by the screen.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
