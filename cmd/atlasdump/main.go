// Command atlasdump rasterizes some text into a glyph atlas, prints
// cache and atlas statistics, and optionally writes the atlas as a
// PNG and serves the cache metrics for Prometheus.
//
// Usage:
//
//	atlasdump -text "Hello!" -size 24 -png atlas.png
//	atlasdump -font ./fonts -family "DejaVu Sans" -walk
//	atlasdump -font ./fonts -list
//	atlasdump -max 0 -text "no caching"
//	atlasdump -metrics :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darbyjohnston/tinygfx-sub002/atlas"
	"github.com/darbyjohnston/tinygfx-sub002/boxpack"
	"github.com/darbyjohnston/tinygfx-sub002/font"
	"github.com/darbyjohnston/tinygfx-sub002/glyph"
	"github.com/darbyjohnston/tinygfx-sub002/glyph/promglyph"
	"github.com/darbyjohnston/tinygfx-sub002/mask"
)

const defaultText = "The quick brown fox jumps over the lazy dog.\n0123456789 !?&%$#@"

func main() {
	var (
		text    = flag.String("text", defaultText, "text to rasterize")
		fontDir = flag.String("font", "", "font file or directory to load (empty = Go fonts)")
		workers = flag.Int("workers", 0, "font parsing goroutines for directories (0 = unlimited)")
		family  = flag.String("family", font.GoRegular, "font family to use")
		list    = flag.Bool("list", false, "list the loaded fonts and exit")
		size    = flag.Int("size", glyph.DefaultSize, "font size in pixels")
		sharp   = flag.Int("sharp", -1, "hard coverage threshold in [0, 255], where 0 means 128 (-1 = antialiased)")

		atlasSize = flag.Int("atlas", 512, "atlas width and height")
		border    = flag.Int("border", atlas.DefaultBorder, "border pixels around each glyph")
		max       = flag.Int("max", glyph.DefaultMax, "max glyphs kept in the cache (0 = only the last one)")

		pngPath     = flag.String("png", "", "write the atlas to this PNG file")
		walk        = flag.Bool("walk", false, "print the packer node tree")
		metricsAddr = flag.String("metrics", "", "serve Prometheus metrics at addr after dumping (e.g. :8080)")
	)
	flag.Parse()
	if *sharp > 255 { log.Fatalf("-sharp must be in [0, 255], got %d", *sharp) }

	// ---- fonts ----
	library := font.NewLibrary()
	if *fontDir == "" {
		_, _, err := library.ParseGoFonts()
		if err != nil { log.Fatal(err) }
	} else {
		loadFonts(library, *fontDir, *workers)
	}
	if *list {
		err := library.EachFont(printFont)
		if err != nil { log.Fatal(err) }
		return
	}
	if !library.HasFont(*family) {
		log.Fatalf("font family %q not found, available: %s", *family, strings.Join(library.Names(), ", "))
	}

	var rasterizer mask.Rasterizer = &mask.DefaultRasterizer{}
	if *sharp >= 0 {
		sharpRasterizer := &mask.SharpRasterizer{}
		sharpRasterizer.SetThreshold(uint8(*sharp))
		rasterizer = sharpRasterizer
	}

	// ---- cache ----
	sfntRasterizer := glyph.NewSfntRasterizer(library, rasterizer)
	missing, err := sfntRasterizer.MissingRunes(*family, *text)
	if err != nil { log.Fatal(err) }
	if len(missing) > 0 {
		log.Printf("warning: %s has no glyphs for %q, notdef will be drawn", *family, string(missing))
	}

	registry := prometheus.NewRegistry()
	cache, err := glyph.New(glyph.Options{
		Atlas: atlas.NewWithBackend(atlas.ImageBackend{}, *atlasSize, atlas.PixelL8, atlas.FilterLinear, *border),
		Rasterizer: sfntRasterizer,
		Max: *max,
		Metrics: promglyph.New(registry, "atlasdump", "glyphs", nil),
		Logger: log.New(os.Stderr, "atlasdump: ", log.LstdFlags),
	})
	if err != nil { log.Fatal(err) }
	if *max == 0 { cache.SetMax(0) } // Options.Max 0 means the default

	handler := cache.NewHandler()
	handler.NotifyFontChange(*family)
	handler.NotifySizeChange(*size)
	refs, err := handler.Glyphs(*text)
	if err != nil { log.Fatal(err) }
	uncached := 0
	for _, ref := range refs {
		if !ref.Cached { uncached += 1 }
	}

	metrics, err := handler.FontMetrics()
	if err != nil { log.Fatal(err) }
	extent, err := cache.Measure(*text, handler.Font())
	if err != nil { log.Fatal(err) }

	// ---- report ----
	stats := cache.Statistics()
	fmt.Printf("font: %s %dpx (ascender %d, descender %d, line height %d)\n",
		*family, *size, metrics.Ascender, metrics.Descender, metrics.LineHeight)
	fmt.Printf("text: %d glyphs requested, %d uncached, extent %dx%d\n",
		len(refs), uncached, extent.X, extent.Y)
	fmt.Printf("cache: %d entries (%.1f%% of max %d)\n",
		stats.EntryCount, stats.CachePercentage*100, cache.Max())
	fmt.Printf("atlas: %d items in %dx%d, %.2f%% used\n",
		stats.AtlasCount, *atlasSize, *atlasSize, stats.PercentageUsed*100)

	if *walk {
		err = cache.Atlas().Walk(func(node boxpack.Node, depth int) error {
			state := "free"
			if node.IsOccupied() { state = fmt.Sprintf("id %d", node.ID) }
			_, err := fmt.Printf("%s%v %s\n", strings.Repeat("  ", depth), node.Box, state)
			return err
		})
		if err != nil { log.Fatal(err) }
	}

	if *pngPath != "" {
		file, err := os.Create(*pngPath)
		if err != nil { log.Fatal(err) }
		err = png.Encode(file, cache.Atlas().Image())
		if err != nil { file.Close() ; log.Fatal(err) }
		err = file.Close()
		if err != nil { log.Fatal(err) }
		fmt.Printf("atlas written to %s\n", *pngPath)
	}

	// ---- metrics ----
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Fatal(http.ListenAndServe(*metricsAddr, nil))
	}
}

func printFont(name string, sfntFont *sfnt.Font) error {
	family, err := font.GetFamily(sfntFont)
	if err != nil { return err }
	subfamily, err := font.GetSubfamily(sfntFont)
	if err != nil { return err }
	_, err = fmt.Printf("%s (family %q, subfamily %q, %d glyphs)\n", name, family, subfamily, sfntFont.NumGlyphs())
	return err
}

// Loads a single font file or all the fonts in a directory.
func loadFonts(library *font.Library, path string, workers int) {
	info, err := os.Stat(path)
	if err != nil { log.Fatal(err) }
	if !info.IsDir() {
		name, err := library.ParseFromPath(path)
		if err != nil { log.Fatal(err) }
		fmt.Printf("loaded font %s\n", name)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	added, skipped, err := library.ParseAllFromFS(ctx, os.DirFS(path), ".", workers)
	if err != nil {
		log.Fatalf("added %d fonts, skipped %d, failed with '%s'", added, skipped, err.Error())
	}
	fmt.Printf("added %d fonts, skipped %d\n", added, skipped)
}
