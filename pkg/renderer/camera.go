package renderer

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// CameraConfig describes a positionable thin-lens camera
type CameraConfig struct {
	Width        int       // Image width in pixels
	AspectRatio  float64   // Width over height
	VFov         float64   // Vertical field of view in degrees
	LookFrom     core.Vec3 // Camera position
	LookAt       core.Vec3 // Point the camera looks at
	VUp          core.Vec3 // Camera-relative up direction
	DefocusAngle float64   // Variation angle of rays through each pixel, in degrees; 0 disables depth of field
	FocusDist    float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   10,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config         CameraConfig
	width, height  int
	center         core.Vec3
	pixel00        core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU    core.Vec3 // Offset to the pixel to the right
	pixelDeltaV    core.Vec3 // Offset to the pixel below
	defocusDiskU   core.Vec3
	defocusDiskV   core.Vec3
	basisU, basisV core.Vec3
	basisW         core.Vec3 // Points opposite the view direction
}

// NewCamera creates a camera from its configuration. The image is at least
// one pixel high.
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	height := max(1, int(float64(width)/config.AspectRatio))

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.LookFrom,
		pixel00:      upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		basisU:       u,
		basisV:       v,
		basisW:       w,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns a ray through a random point of pixel (i, j), counted from
// the top-left, starting on the defocus disk and cast at a random shutter time
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixelCenter(i, j).
		Add(c.pixelDeltaU.Multiply(offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// CenterRay returns the pinhole ray through the center of pixel (i, j) at time 0
func (c *Camera) CenterRay(i, j int) core.Ray {
	return core.NewRay(c.center, c.pixelCenter(i, j).Subtract(c.center))
}

func (c *Camera) pixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}
