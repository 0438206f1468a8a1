// Command glyphkern imports a font and prints auto-kerning values for
// character pairs.
//
//	glyphkern -font Font.ttf -pairs AV,To,Ty -workers 4
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/fontimport"
	"github.com/gogpu/glyph/kern"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "TrueType/OpenType font file")
		pairList  = flag.String("pairs", "AV,AT,To,Ty,LT,VA,Yo", "comma separated character pairs")
		backend   = flag.String("backend", "ximage", "font parser: ximage or gotext")
		thickness = flag.Float64("thickness", 0, "stroke thickness in font units")
		workers   = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		verbose   = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	b, ok := fontimport.ParseBackend(*backend)
	if !ok {
		log.Fatalf("unknown backend %q", *backend)
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("Failed to read font: %v", err)
	}

	pairs, runes, err := parsePairs(*pairList)
	if err != nil {
		log.Fatal(err)
	}

	f, err := fontimport.Import(data, fontimport.WithBackend(b), fontimport.WithRunes(runes))
	if err != nil {
		log.Fatalf("Failed to import font: %v", err)
	}

	charPairs := make([]kern.CharPair, 0, len(pairs))
	for _, p := range pairs {
		l, lok := f.Characters[p.Left]
		r, rok := f.Characters[p.Right]
		if !lok || !rok {
			log.Printf("skipping %c%c: not in font", p.Left, p.Right)
			continue
		}
		charPairs = append(charPairs, kern.CharPair{Left: l, Right: r})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := kern.Source{
		Glyphs:          f.Glyphs,
		Metrics:         f.Metrics,
		StrokeThickness: *thickness,
	}
	opts := []kern.Option{kern.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, kern.WithProgress(func(pct float64) {
			fmt.Fprintf(os.Stderr, "\r%5.1f%%", pct)
		}))
	}

	result, err := kern.SolveBatch(ctx, charPairs, src, opts...)
	if *verbose {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		log.Printf("solve interrupted: %v", err)
	}

	for _, p := range pairs {
		k, ok := result[p]
		if !ok {
			fmt.Printf("%c%c\t-\n", p.Left, p.Right)
			continue
		}
		fmt.Printf("%c%c\t%d\n", p.Left, p.Right, k)
	}
}

// parsePairs splits "AV,To" into pairs and the distinct runes they use.
func parsePairs(s string) ([]kern.Pair, []rune, error) {
	var pairs []kern.Pair
	var runes []rune
	for field := range strings.SplitSeq(s, ",") {
		rs := []rune(strings.TrimSpace(field))
		if len(rs) == 0 {
			continue
		}
		if len(rs) != 2 {
			return nil, nil, fmt.Errorf("invalid pair %q: want two characters", field)
		}
		pairs = append(pairs, kern.Pair{Left: rs[0], Right: rs[1]})
		for _, r := range rs {
			if !slices.Contains(runes, r) {
				runes = append(runes, r)
			}
		}
	}
	return pairs, runes, nil
}
