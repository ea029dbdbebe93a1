package mesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/assets"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/formats"
	"github.com/Faultbox/quatviz/pkg/math"
)

// ErrAssetNotFound is returned when the mesh file cannot be located.
var ErrAssetNotFound = assets.ErrNotFound

// Options controls mesh loading.
type Options struct {
	// Decimate keeps this fraction of faces; 0 disables decimation.
	Decimate float64
	// Locator resolves and caches the asset. Nil searches the default
	// directories with a throwaway locator.
	Locator *assets.Locator
}

// Load reads an STL asset, applies the axis correction and recenters it so
// its center of mass sits at the origin.
func Load(name string, opts Options) (*Mesh, error) {
	log := logger.Named("mesh")

	loc := opts.Locator
	if loc == nil {
		loc = assets.NewLocator(assets.DefaultDirs()...)
	}

	data, path, err := loc.Load(name)
	if err != nil {
		return nil, err
	}

	stl, err := formats.ParseSTL(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	m := FromSTL(stl)
	log.Info("mesh loaded",
		zap.String("path", path),
		zap.Bool("binary", stl.Binary),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", m.TriangleCount()),
		zap.Float64("surface_area", m.SurfaceArea()),
	)

	if opts.Decimate > 0 && opts.Decimate < 1 {
		before := m.TriangleCount()
		m = m.Decimate(opts.Decimate)
		log.Info("mesh decimated",
			zap.Int("faces_before", before),
			zap.Int("faces_after", m.TriangleCount()),
		)
	}

	m = m.Transform(math.AxisCorrection())

	com := m.CenterOfMass()
	m = m.Translate(com.Scale(-1))
	log.Info("mesh recentered",
		zap.Float64("com_x", com.X),
		zap.Float64("com_y", com.Y),
		zap.Float64("com_z", com.Z),
		zap.Float64("radius", m.Radius()),
	)

	return m, nil
}
