package renderer

import (
	"image"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// TileRenderer renders the pixels of individual tiles
type TileRenderer struct {
	camera    *Camera
	raytracer *Raytracer
	maxDepth  int
}

// NewTileRenderer creates a tile renderer for a camera and a world
func NewTileRenderer(camera *Camera, raytracer *Raytracer, maxDepth int) *TileRenderer {
	return &TileRenderer{
		camera:    camera,
		raytracer: raytracer,
		maxDepth:  maxDepth,
	}
}

// RenderTileBounds adds samples to every pixel within bounds until each
// reaches targetSamples. Pixels already at the target are left untouched.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	stats := newRenderStats(bounds.Dx()*bounds.Dy(), targetSamples)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for ps.SampleCount < targetSamples {
				ray := tr.camera.GetRay(i, j, sampler)
				ps.AddSample(tr.raytracer.RayColor(ray, tr.maxDepth, sampler))
			}
			stats.addPixel(ps.SampleCount)
		}
	}

	stats.finalize()
	return stats
}
