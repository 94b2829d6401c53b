// Package render is the tile-parallel render driver: it partitions a
// camera's canvas into tiles, hands them to a worker pool, and assembles
// the results into an image or an ASCII grid. The worker-pool shape is
// grounded on github.com/gazed/vu/eg/rt.go's channel-based
// rayTrace/worker/row dispatch, generalized from rows to rectangular
// tiles and from a hardcoded sphere scene to an arbitrary scene.Store.
package render

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/galvanized/raymarch/camera"
	"github.com/galvanized/raymarch/integrate"
	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

// DefaultTileSize is the edge length of a square work unit handed to a
// worker when Options.TileSize is unset.
const DefaultTileSize = 32

// Options configures a render driver beyond what the scene graph itself
// specifies.
type Options struct {
	// Threads is the worker pool size. Zero or negative means logical CPUs.
	Threads int
	// TileSize overrides DefaultTileSize. Zero or negative uses the default.
	TileSize int
	// AsciiRamp overrides DefaultAsciiRamp for ascii targets.
	AsciiRamp string
	Logger    *slog.Logger
}

func (o Options) threads() int {
	if o.Threads > 0 {
		return o.Threads
	}
	return runtime.NumCPU()
}

func (o Options) tileSize() int {
	if o.TileSize > 0 {
		return o.TileSize
	}
	return DefaultTileSize
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Pixels is a camera-dimensioned grid of shaded colors, row-major, row 0
// at the top of the image.
type Pixels struct {
	Width, Height int
	Data          []vec.Color
}

func newPixels(w, h int) *Pixels {
	return &Pixels{Width: w, Height: h, Data: make([]vec.Color, w*h)}
}

func (p *Pixels) at(x, y int) vec.Color { return p.Data[y*p.Width+x] }

// At returns the shaded color at (x, y), row 0 at the top of the image.
func (p *Pixels) At(x, y int) vec.Color { return p.at(x, y) }

func (p *Pixels) set(x, y int, c vec.Color) { p.Data[y*p.Width+x] = c }

type tile struct{ x0, y0, x1, y1 int }

// RenderTarget runs the full marcher→integrator pipeline for one scene
// target and returns the resulting pixel grid, tiled across a worker pool.
func RenderTarget(store *scene.Store, target scene.Target, opts Options) (*Pixels, error) {
	log := opts.logger()

	cam, ok := store.GetCamera(target.Camera)
	if !ok {
		return nil, scene.UndefinedName{Name: "<unresolved camera id>"}
	}
	pin, err := camera.FromScene(store, target.Camera)
	if err != nil {
		return nil, err
	}

	budget := target.RecursionBudget
	if budget <= 0 {
		budget = scene.DefaultRecursionBudget
	}

	pixels := newPixels(cam.Width, cam.Height)
	tiles := tileGrid(cam.Width, cam.Height, opts.tileSize())

	start := time.Now()
	var traced int64
	var mu sync.Mutex

	work := make(chan tile, len(tiles))
	var wg sync.WaitGroup
	n := opts.threads()
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			var local int64
			for tl := range work {
				local += renderTile(store, target.Root, pin, budget, pixels, tl)
			}
			mu.Lock()
			traced += local
			mu.Unlock()
		}()
	}
	for _, tl := range tiles {
		work <- tl
	}
	close(work)
	wg.Wait()

	log.Info("render target complete",
		"target", target.Label,
		"path", target.Path,
		"width", cam.Width,
		"height", cam.Height,
		"tiles", len(tiles),
		"threads", n,
		"pixelsTraced", traced,
		"elapsed", time.Since(start).String(),
	)

	return pixels, nil
}

func tileGrid(w, h, size int) []tile {
	var tiles []tile
	for y := 0; y < h; y += size {
		for x := 0; x < w; x += size {
			x1, y1 := x+size, y+size
			if x1 > w {
				x1 = w
			}
			if y1 > h {
				y1 = h
			}
			tiles = append(tiles, tile{x0: x, y0: y, x1: x1, y1: y1})
		}
	}
	return tiles
}

// renderTile shades every pixel in tl and writes it into pixels, returning
// the number of pixels it processed for the caller's running statistics.
func renderTile(store *scene.Store, root scene.NodeID, pin camera.Pinhole, budget int, pixels *Pixels, tl tile) int64 {
	var count int64
	for y := tl.y0; y < tl.y1; y++ {
		for x := tl.x0; x < tl.x1; x++ {
			pixels.set(x, y, shadePixel(store, root, pin, budget, x, y))
			count++
		}
	}
	return count
}

func shadePixel(store *scene.Store, root scene.NodeID, pin camera.Pinhole, budget, x, y int) vec.Color {
	sum := vec.Black
	samples := pin.Sampler.NX * pin.Sampler.NY
	for sy := 0; sy < pin.Sampler.NY; sy++ {
		for sx := 0; sx < pin.Sampler.NX; sx++ {
			ray := pin.Ray(x, y, sx, sy)
			sum = sum.Add(shade(store, root, ray, budget))
		}
	}
	return sum.Scale(1 / float64(samples)).Clamp()
}

func shade(store *scene.Store, root scene.NodeID, ray march.Ray, budget int) vec.Color {
	return integrate.Shade(store, root, ray, budget)
}
