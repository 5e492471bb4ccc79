// Command figdemo renders exercise figures to image files in any
// registered drawing format.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/catalog"
	"github.com/gogpu/figure/drawing"
	"github.com/gogpu/figure/illustrate"
)

func main() {
	var (
		exercise = flag.String("exercise", "straight_leg_raise", "exercise id")
		gender   = flag.String("gender", "neutral", "gender variant: male, female or neutral")
		size     = flag.Int("size", 240, "image width in pixels")
		format   = flag.String("format", "svg", "output format: "+strings.Join(drawing.Formats(), ", "))
		progress = flag.Float64("t", 0, "animation progress in [0, 1]")
		output   = flag.String("output", "", "output file (default <exercise>.<format>)")
		caption  = flag.Bool("caption", false, "print the exercise name under the figure")
		list     = flag.Bool("list", false, "list exercises and exit")
		all      = flag.Bool("all", false, "render every exercise")
		dir      = flag.String("dir", ".", "output directory for -all")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	figure.SetLogger(logger)

	if *list {
		listExercises()
		return
	}
	f, err := drawing.LookupFormat(*format)
	if err != nil {
		fatal(logger, "unknown format", slog.String("format", *format),
			slog.String("available", strings.Join(drawing.Formats(), ", ")))
	}
	if *progress < 0 || *progress > 1 {
		fatal(logger, "t out of range", slog.Float64("t", *progress))
	}

	ctx := illustrate.New(
		illustrate.WithGender(figure.ParseGender(*gender)),
		illustrate.WithLogger(logger),
	)
	var opts []illustrate.RenderOption
	if *caption {
		opts = append(opts, illustrate.WithCaption())
	}

	if *all {
		if err := os.MkdirAll(*dir, 0o755); err != nil {
			fatal(logger, "create output directory", slog.String("error", err.Error()))
		}
		for _, ex := range catalog.All() {
			path := filepath.Join(*dir, ex.ID+"."+f.Ext)
			if err := render(ctx, ex.ID, path, f, *size, *progress, opts); err != nil {
				fatal(logger, "render", slog.String("exercise", ex.ID), slog.String("error", err.Error()))
			}
		}
		logger.Info("rendered catalog", slog.Int("exercises", catalog.Default().Len()), slog.String("dir", *dir))
		return
	}

	path := *output
	if path == "" {
		path = *exercise + "." + f.Ext
	}
	if err := render(ctx, *exercise, path, f, *size, *progress, opts); err != nil {
		fatal(logger, "render", slog.String("exercise", *exercise), slog.String("error", err.Error()))
	}
	logger.Info("figure saved", slog.String("path", path), slog.Int("size", *size))
}

func render(ctx *illustrate.Context, id, path string, f drawing.Format, size int, t float64, opts []illustrate.RenderOption) error {
	ill, ok := ctx.RenderAt(id, size, t, opts...)
	if !ok {
		return fmt.Errorf("unknown exercise %q", id)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	err = ill.Encode(out, f.Name)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func listExercises() {
	for _, bp := range catalog.Categories() {
		exercises := catalog.ByBodyPart(bp)
		fmt.Printf("%s (%d)\n", bp.Label(), len(exercises))
		for _, ex := range exercises {
			fmt.Printf("  %-28s %s\n", ex.ID, ex.Name)
		}
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%d exercises\n", catalog.Default().Len())
}

func fatal(logger *slog.Logger, msg string, attrs ...any) {
	logger.Error(msg, attrs...)
	os.Exit(1)
}
