package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

const inspectMinT = 0.001

// InspectResponse describes what the centre ray of a pixel hits.
type InspectResponse struct {
	Scene        string         `json:"scene"`
	X            int            `json:"x"`
	Y            int            `json:"y"`
	Hit          bool           `json:"hit"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	T            float64        `json:"t"`
	FrontFace    bool           `json:"frontFace"`
	U            float64        `json:"u"`
	V            float64        `json:"v"`
	MaterialType string         `json:"materialType,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// handleInspect casts the pinhole ray through the centre of pixel x, y.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	req := RenderRequest{Scene: values.Get("scene")}
	var err error
	if req.Width, err = parseIntParam(values, "width"); err != nil {
		writeError(w, err)
		return
	}
	if req, err = s.normalize(req); err != nil {
		writeError(w, err)
		return
	}

	if values.Get("x") == "" || values.Get("y") == "" {
		writeError(w, errors.New("x and y are required").WithType(ErrTypeBadRequest))
		return
	}
	x, err := parseIntParam(values, "x")
	if err != nil {
		writeError(w, err)
		return
	}
	y, err := parseIntParam(values, "y")
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.inspect(req, x, y)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) inspect(req RenderRequest, x, y int) (InspectResponse, error) {
	sc, _, err := s.newPipeline("", req)
	if err != nil {
		return InspectResponse{}, err
	}

	camera := renderer.NewCamera(sc.Camera)
	if x < 0 || x >= camera.Width() || y < 0 || y >= camera.Height() {
		return InspectResponse{}, errors.New("pixel outside the image").
			WithType(ErrTypeBadRequest).
			WithTag("x", x).
			WithTag("y", y).
			WithTag("width", camera.Width()).
			WithTag("height", camera.Height())
	}

	resp := InspectResponse{Scene: sc.Name, X: x, Y: y}

	ray := camera.CenterRay(x, y)
	rec, hit := sc.World.Hit(ray, core.NewInterval(inspectMinT, math.Inf(1)), core.NewSeededSampler(s.opts.Seed))
	if !hit {
		return resp, nil
	}

	resp.Hit = true
	resp.Point = vecArray(rec.Point)
	resp.Normal = vecArray(rec.Normal)
	resp.T = rec.T
	resp.FrontFace = rec.FrontFace
	resp.U = rec.U
	resp.V = rec.V
	resp.MaterialType, resp.Properties = extractMaterialInfo(rec.Material)
	return resp, nil
}

// extractMaterialInfo names the material and lists its parameters
func extractMaterialInfo(mat core.Material) (string, map[string]any) {
	switch m := mat.(type) {
	case nil:
		return "none", nil

	case *material.Lambertian:
		return "lambertian", map[string]any{"albedo": describeTexture(m.Albedo)}

	case *material.Metal:
		return "metal", map[string]any{
			"albedo":   vecArray(m.Albedo),
			"color":    hexColor(m.Albedo),
			"fuzzness": m.Fuzzness,
		}

	case *material.Dielectric:
		return "dielectric", map[string]any{"refractiveIndex": m.RefractiveIndex}

	case *material.DiffuseLight:
		return "diffuse_light", map[string]any{"emission": describeTexture(m.Emission)}

	case *material.Isotropic:
		return "isotropic", map[string]any{"albedo": describeTexture(m.Albedo)}

	default:
		return fmt.Sprintf("%T", mat), nil
	}
}

func describeTexture(t texture.Texture) map[string]any {
	switch tex := t.(type) {
	case *texture.SolidColor:
		return map[string]any{
			"type":  "solid",
			"color": vecArray(tex.Color),
			"hex":   hexColor(tex.Color),
		}

	case *texture.Checker:
		return map[string]any{
			"type": "checker",
			"even": describeTexture(tex.Even),
			"odd":  describeTexture(tex.Odd),
		}

	case *texture.ImageTexture:
		props := map[string]any{"type": "image", "loaded": tex.Image != nil}
		if tex.Image != nil {
			props["width"] = tex.Image.Width
			props["height"] = tex.Image.Height
		}
		return props

	case *texture.Noise:
		return map[string]any{"type": "noise", "scale": tex.Scale}

	default:
		return map[string]any{"type": fmt.Sprintf("%T", t)}
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a linear color as #rrggbb, clamping each channel.
func hexColor(c core.Vec3) string {
	channel := func(x float64) int {
		return int(255*core.UnitInterval.Clamp(x) + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X), channel(c.Y), channel(c.Z))
}
