// Command lab generates a perfect maze, solves it from the top-left to the
// bottom-right cell, and renders both to a PNG, SVG or text file.
//
// Usage:
//
//	lab [-width W] [-height H] [-cell C] [-seed S] [-o file] [-format png|svg|txt] [-style reference|walls] [-verify]
//
// Defaults come from config.Load: an optional .env file and LAB_* variables,
// falling back to an 800×600 picture of 20px cells. Without -width or -height
// the grid fills the configured window at the chosen cell size. Without -o the
// output file takes the extension of -format. Seed 0 picks a seed from the
// clock and logs it, so any run can be reproduced.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lab/config"
	"github.com/katalvlaran/lab/generator"
	"github.com/katalvlaran/lab/render"
	"github.com/katalvlaran/lab/solver"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[LAB] [ERROR] %v", err)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("lab", flag.ContinueOnError)
	width := fs.Int("width", 0, "maze columns (0 = fit the window)")
	height := fs.Int("height", 0, "maze rows (0 = fit the window)")
	cell := fs.Int("cell", cfg.CellSize, "cell size in pixels")
	seed := fs.Int64("seed", cfg.Seed, "generator seed (0 = pick from clock)")
	out := fs.String("o", cfg.Output, "output file, - for stdout")
	format := fs.String("format", cfg.Format, "output format: png, svg or txt")
	style := fs.String("style", cfg.Style, "line convention: reference or walls")
	verify := fs.Bool("verify", false, "check the spanning-tree property before solving")
	if err = fs.Parse(args); err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.CellSize = *cell
	if set["width"] {
		cfg.WindowWidth = *width * *cell
	}
	if set["height"] {
		cfg.WindowHeight = *height * *cell
	}
	cfg.Seed = *seed
	cfg.Format = *format
	cfg.Output = *out
	if !set["o"] {
		cfg.Output = withFormatExt(cfg.Output, cfg.Format)
	}
	cfg.Style = *style
	if err = cfg.Validate(); err != nil {
		return err
	}
	cols, rows := cfg.Columns(), cfg.Rows()
	conv, err := render.ParseConvention(cfg.Style)
	if err != nil {
		return err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()
	log.Printf("[LAB] [INFO] run %s: %dx%d maze, seed %d", runID, cols, rows, cfg.Seed)

	started := time.Now()
	m, err := generator.Generate(cols, rows, generator.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	if *verify {
		if err = m.Verify(); err != nil {
			return fmt.Errorf("generated maze failed verification: %w", err)
		}
		log.Printf("[LAB] [INFO] run %s: spanning tree verified, %d passages", runID, m.PassageCount())
	}

	res, err := solver.SolveDetailed(m)
	if err != nil {
		return err
	}
	if res.Found() {
		log.Printf("[LAB] [INFO] run %s: path of %d cells, %d visits, %d backtracks in %v",
			runID, res.Path.Len(), res.Visited, res.Backtracks, time.Since(started))
	} else {
		log.Printf("[LAB] [WARN] run %s: exit unreachable, drawing maze only", runID)
	}

	st := render.DefaultStyle()
	st.CellSize = cfg.CellSize
	st.Convention = conv
	err = writeOutput(cfg.Output, stdout, func(w io.Writer) error {
		switch cfg.Format {
		case config.FormatPNG:
			return render.WritePNG(w, m, res.Path, st)
		case config.FormatSVG:
			return render.WriteSVG(w, m, res.Path, st)
		default:
			_, werr := io.WriteString(w, render.ASCII(m, res.Path))
			return werr
		}
	})
	if err != nil {
		return err
	}

	log.Printf("[LAB] [INFO] run %s: wrote %s (%s)", runID, cfg.Output, cfg.Format)
	return nil
}

// withFormatExt swaps the extension of path for the one format implies.
// "-" and an empty path are returned unchanged.
func withFormatExt(path, format string) string {
	if path == "" || path == "-" || format == "" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
}

// writeOutput hands write either stdout (path "-") or a new file at path.
// A file whose write or close fails is removed.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil {
				log.Printf("[LAB] [WARN] could not remove partial output %s: %v", path, rerr)
			}
		}
	}()
	return write(f)
}
