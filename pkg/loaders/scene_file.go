package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/geometry"
	"github.com/vini-fda/luz/pkg/material"
	"github.com/vini-fda/luz/pkg/scene"
)

var (
	ErrNoShape        = errors.New("shape has no kind set")
	ErrAmbiguousShape = errors.New("shape sets more than one kind")
	ErrCSGOperands    = errors.New("csg shape needs at least two operands")
)

// SceneFile is the YAML description of a scene
type SceneFile struct {
	Name     string       `yaml:"name"`
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec pairs a shape with a material
type EntitySpec struct {
	Name     string       `yaml:"name"`
	Shape    ShapeSpec    `yaml:"shape"`
	Material MaterialSpec `yaml:"material"`
}

// ShapeSpec sets exactly one of its fields. Union and Intersection hold two
// or more operands, combined left to right.
type ShapeSpec struct {
	Circle       *CircleSpec    `yaml:"circle,omitempty"`
	Polygon      *PolygonSpec   `yaml:"polygon,omitempty"`
	Rectangle    *RectangleSpec `yaml:"rectangle,omitempty"`
	Ngon         *NgonSpec      `yaml:"ngon,omitempty"`
	Union        []ShapeSpec    `yaml:"union,omitempty"`
	Intersection []ShapeSpec    `yaml:"intersection,omitempty"`
}

type CircleSpec struct {
	Center [2]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

type PolygonSpec struct {
	Points [][2]float64 `yaml:"points"`
}

type RectangleSpec struct {
	Center [2]float64 `yaml:"center"`
	Theta  float64    `yaml:"theta"` // Rotation in radians
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

type NgonSpec struct {
	Center [2]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
	Sides  int        `yaml:"sides"`
}

// MaterialSpec mirrors material.Material with a named type
type MaterialSpec struct {
	Type         string     `yaml:"type"`
	Eta          float64    `yaml:"eta,omitempty"`
	Absorptivity [3]float64 `yaml:"absorptivity,omitempty"`
	Emissivity   [3]float64 `yaml:"emissivity,omitempty"`
}

// ParseSceneFile decodes a YAML scene description without building it
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	file := &SceneFile{}
	if err := decoder.Decode(file); err != nil {
		if errors.Is(err, io.EOF) {
			return file, nil
		}
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return file, nil
}

// LoadSceneFile loads and parses a YAML scene description
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseSceneFile(file)
}

// LoadScene loads a YAML scene description and builds the scene
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	return file.Build()
}

// Build constructs the scene, validating every shape and material
func (f *SceneFile) Build() (*scene.Scene, error) {
	if len(f.Entities) == 0 {
		return nil, errors.New("scene file has no entities")
	}

	s := scene.NewScene()
	for i, spec := range f.Entities {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("entity%d", i)
		}

		shape, err := spec.Shape.Build()
		if err != nil {
			return nil, fmt.Errorf("entities[%d] %q shape: %w", i, name, err)
		}
		mat, err := spec.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("entities[%d] %q material: %w", i, name, err)
		}
		if err := s.Add(name, shape, mat); err != nil {
			return nil, fmt.Errorf("entities[%d]: %w", i, err)
		}
	}
	return s, nil
}

// Build constructs the shape tree
func (s ShapeSpec) Build() (geometry.Shape, error) {
	if n := s.kinds(); n == 0 {
		return geometry.Shape{}, ErrNoShape
	} else if n > 1 {
		return geometry.Shape{}, ErrAmbiguousShape
	}

	switch {
	case s.Circle != nil:
		c, err := geometry.NewCircle(vec(s.Circle.Center), s.Circle.Radius)
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("circle: %w", err)
		}
		return geometry.FromCircle(c), nil

	case s.Polygon != nil:
		points := make([]core.Vec2, len(s.Polygon.Points))
		for i, p := range s.Polygon.Points {
			points[i] = vec(p)
		}
		return polygonShape("polygon", points)

	case s.Rectangle != nil:
		r := s.Rectangle
		if r.Width <= 0 || r.Height <= 0 {
			return geometry.Shape{}, fmt.Errorf("rectangle: size must be positive, got %vx%v", r.Width, r.Height)
		}
		p, err := geometry.NewRectangle(vec(r.Center), r.Theta, r.Width, r.Height)
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("rectangle: %w", err)
		}
		return geometry.FromPolygon(p), nil

	case s.Ngon != nil:
		n := s.Ngon
		if n.Radius <= 0 {
			return geometry.Shape{}, fmt.Errorf("ngon: radius must be positive, got %v", n.Radius)
		}
		p, err := geometry.NewNgon(vec(n.Center), n.Radius, n.Sides)
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("ngon: %w", err)
		}
		return geometry.FromPolygon(p), nil

	case s.Union != nil:
		return buildCSG("union", s.Union, geometry.NewUnion)

	default:
		return buildCSG("intersection", s.Intersection, geometry.NewIntersection)
	}
}

func (s ShapeSpec) kinds() int {
	n := 0
	for _, set := range []bool{
		s.Circle != nil,
		s.Polygon != nil,
		s.Rectangle != nil,
		s.Ngon != nil,
		s.Union != nil,
		s.Intersection != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func polygonShape(kind string, points []core.Vec2) (geometry.Shape, error) {
	p, err := geometry.NewPolygon(points)
	if err != nil {
		return geometry.Shape{}, fmt.Errorf("%s: %w", kind, err)
	}
	return geometry.FromPolygon(p), nil
}

func buildCSG(kind string, operands []ShapeSpec, combine func(a, b geometry.Shape) geometry.Shape) (geometry.Shape, error) {
	if len(operands) < 2 {
		return geometry.Shape{}, fmt.Errorf("%s: %w", kind, ErrCSGOperands)
	}

	var result geometry.Shape
	for i, operand := range operands {
		shape, err := operand.Build()
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		if i == 0 {
			result = shape
		} else {
			result = combine(result, shape)
		}
	}
	return result, nil
}

// Build converts the spec to a validated material
func (m MaterialSpec) Build() (material.Material, error) {
	t, err := material.ParseType(m.Type)
	if err != nil {
		return material.Material{}, err
	}

	mat := material.Material{
		Type:         t,
		Eta:          m.Eta,
		Absorptivity: color(m.Absorptivity),
		Emissivity:   color(m.Emissivity),
	}
	if err := mat.Validate(); err != nil {
		return material.Material{}, err
	}
	return mat, nil
}

func vec(v [2]float64) core.Vec2 {
	return core.NewVec2(v[0], v[1])
}

func color(c [3]float64) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml and .yml files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
