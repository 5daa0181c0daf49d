package scene

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// MaterialCfg describes a material either by preset name or explicit color.
// Emission and reflectivity are optional.
type MaterialCfg struct {
	Preset       string   `json:"preset,omitempty"`
	Color        *Vec3Cfg `json:"color,omitempty"`
	Emission     *Vec3Cfg `json:"emission,omitempty"`
	Reflectivity *float64 `json:"reflectivity,omitempty"`
}

type CameraCfg struct {
	Origin             Vec3Cfg  `json:"origin"`
	Direction          *Vec3Cfg `json:"direction,omitempty"` // defaults to +Z
	ProjectionDistance float64  `json:"projectionDistance,omitempty"`
}

type SphereCfg struct {
	Center   Vec3Cfg     `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

type TriangleCfg struct {
	Vertices [3]Vec3Cfg  `json:"vertices"`
	Material MaterialCfg `json:"material"`
}

type RectangleCfg struct {
	Origin   Vec3Cfg     `json:"origin"`
	Dir1     Vec3Cfg     `json:"dir1"`
	Dir2     Vec3Cfg     `json:"dir2"`
	Material MaterialCfg `json:"material"`
}

// Config is the JSON scene descriptor
type Config struct {
	Camera     CameraCfg      `json:"camera"`
	Light      *SphereCfg     `json:"light,omitempty"`
	Spheres    []SphereCfg    `json:"spheres,omitempty"`
	Triangles  []TriangleCfg  `json:"triangles,omitempty"`
	Rectangles []RectangleCfg `json:"rectangles,omitempty"`
}

// LoadFile reads a JSON scene descriptor from disk
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scene %s", path)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %s", path)
	}
	return s, nil
}

// Load decodes a JSON scene descriptor and builds a validated scene
func Load(r io.Reader) (*Scene, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode scene descriptor")
	}
	return cfg.Build()
}

// Build turns the descriptor into a scene
func (cfg Config) Build() (*Scene, error) {
	direction := core.NewVec3(0, 0, 1)
	if cfg.Camera.Direction != nil {
		direction = cfg.Camera.Direction.vec()
	}
	camera := geometry.NewCamera(cfg.Camera.Origin.vec(), direction)
	if cfg.Camera.ProjectionDistance > 0 {
		camera.ProjectionDistance = cfg.Camera.ProjectionDistance
	}

	var light geometry.Shape
	if cfg.Light != nil {
		sphere, err := cfg.Light.build()
		if err != nil {
			return nil, errors.Wrap(err, "light")
		}
		light = sphere
	}

	s := New(camera, light)

	spheres, err := collect(cfg.Spheres, "sphere", func(c SphereCfg) ([]geometry.Shape, error) {
		sphere, err := c.build()
		return []geometry.Shape{sphere}, err
	})
	if err != nil {
		return nil, err
	}
	triangles, err := collect(cfg.Triangles, "triangle", func(c TriangleCfg) ([]geometry.Shape, error) {
		mat, err := c.Material.build()
		return []geometry.Shape{
			geometry.NewTriangle(c.Vertices[0].vec(), c.Vertices[1].vec(), c.Vertices[2].vec(), mat),
		}, err
	})
	if err != nil {
		return nil, err
	}
	rectangles, err := collect(cfg.Rectangles, "rectangle", func(c RectangleCfg) ([]geometry.Shape, error) {
		mat, err := c.Material.build()
		return geometry.NewRectangle(c.Origin.vec(), c.Dir1.vec(), c.Dir2.vec(), mat), err
	})
	if err != nil {
		return nil, err
	}

	s.Add(spheres...)
	s.Add(triangles...)
	s.Add(rectangles...)

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}
	return s, nil
}

// collect builds every descriptor, reporting the first failure by index
func collect[T any](cfgs []T, kind string, build func(T) ([]geometry.Shape, error)) ([]geometry.Shape, error) {
	type built struct {
		shapes []geometry.Shape
		err    error
	}
	results := lo.Map(cfgs, func(c T, _ int) built {
		shapes, err := build(c)
		return built{shapes: shapes, err: err}
	})
	for i, r := range results {
		if r.err != nil {
			return nil, errors.Wrapf(r.err, "%s %d", kind, i)
		}
	}
	return lo.FlatMap(results, func(r built, _ int) []geometry.Shape {
		return r.shapes
	}), nil
}

func (c SphereCfg) build() (*geometry.Sphere, error) {
	mat, err := c.Material.build()
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(c.Center.vec(), c.Radius, mat), nil
}

func (c MaterialCfg) build() (material.Material, error) {
	var mat material.Material
	switch {
	case c.Preset != "" && c.Color != nil:
		return mat, errors.New("material sets both preset and color")
	case c.Preset != "":
		preset, ok := material.Preset(c.Preset)
		if !ok {
			return mat, errors.Errorf("unknown material preset %q", c.Preset)
		}
		mat = preset
	case c.Color != nil:
		mat = material.New(c.Color.vec())
	default:
		mat = material.White()
	}

	if c.Emission != nil {
		mat = mat.WithEmission(c.Emission.vec())
	}
	if c.Reflectivity != nil {
		mat = mat.WithReflectivity(*c.Reflectivity)
	}
	return mat, nil
}
