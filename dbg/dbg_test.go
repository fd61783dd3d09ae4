package dbg

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/robust/advanced"
	"github.com/osuushi/robust/expansion"
	"github.com/osuushi/robust/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shewchukMap(size int) SignMap {
	return SignMap{
		A:      advanced.Point2{12, 12},
		B:      advanced.Point2{24, 24},
		Origin: advanced.Point2{0.5, 0.5},
		Size:   size,
		Scale:  2,
	}
}

func TestEvaluate(t *testing.T) {
	m := shewchukMap(16)
	grid := m.Evaluate()
	require.Len(t, grid, 16)
	for _, row := range grid {
		require.Len(t, row, 16)
		for _, cell := range row {
			assert.Equal(t, oracle.Sign2(m.A, m.B, cell.Query), int(cell.Adaptive), "query %v", cell.Query)
		}
	}

	// Rows go up in Y, columns go right in X
	assert.Equal(t, advanced.Point2{0.5, 0.5}, grid[0][0].Query)
	assert.Equal(t, math.Nextafter(0.5, 1), grid[0][1].Query[0])
	assert.Equal(t, math.Nextafter(0.5, 1), grid[1][0].Query[1])

	// The diagonal of the grid is on the line
	for i := range grid {
		assert.Equal(t, advanced.Collinear, grid[i][i].Adaptive)
	}

	fast, exact, _ := grid.Count()
	assert.Equal(t, 16*16, fast+exact)
	assert.Positive(t, exact)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, shewchukMap(8).SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	bounds := shewchukMap(8).Draw().Image().Bounds()
	assert.Equal(t, 2*8*2+dbgDrawPadding*3, bounds.Dx())
	assert.Equal(t, 8*2+dbgDrawPadding*2, bounds.Dy())

	err = shewchukMap(0).SavePNG(filepath.Join(t.TempDir(), "empty.png"))
	assert.EqualError(t, err, "sign map needs a positive size and scale, got 0 and 2")
}

func TestFormatter(t *testing.T) {
	plain := NewFormatter(false)
	assert.Equal(t, "-1 counterclockwise fast", plain.Result(-1, advanced.FastPath))
	assert.Equal(t, "0 collinear exact", plain.Result(0, advanced.ExactPath))
	assert.Equal(t, "2.5e-20 clockwise exact", plain.Result(2.5e-20, advanced.ExactPath))
	assert.Equal(t, "[1e-20 1]", plain.Expansion(expansion.Expansion{1e-20, 1}))
	assert.Equal(t, "[]", plain.Expansion(nil))

	colored := NewFormatter(true)
	assert.True(t, strings.HasPrefix(colored.Path(advanced.ExactPath), "\x1b["))
	assert.Contains(t, colored.Orientation(advanced.Clockwise), "clockwise")
	assert.NotEqual(t, plain.Result(1, advanced.FastPath), colored.Result(1, advanced.FastPath))
}

func TestReadableFileName(t *testing.T) {
	name := ReadableFileName("/tmp/maps", "signmap", ".png")
	assert.Equal(t, "/tmp/maps", filepath.Dir(name))
	base := filepath.Base(name)
	assert.True(t, strings.HasPrefix(base, "signmap-"), base)
	assert.True(t, strings.HasSuffix(base, ".png"), base)
	// prefix, adjective and name
	assert.Len(t, strings.Split(strings.TrimSuffix(base, ".png"), "-"), 3)
}

func TestUlpSteps(t *testing.T) {
	steps := ulpSteps(1, 3)
	assert.Equal(t, []float64{1, 1 + 0x1p-52, 1 + 0x1p-51}, steps)
}
