package robust

import (
	"strconv"

	"github.com/osuushi/robust/advanced"
	"github.com/twpayne/go-geom"
)

// Turns evaluates Orientation2D at every interior vertex of a line string,
// using the previous and next vertex as the directed line. turns[i] is the turn
// at vertex i+1: negative for a left (counterclockwise) turn, positive for a
// right turn and zero where the line continues straight or doubles back.
//
// Only X and Y are used, so any layout works as long as it has at least two
// dimensions. Line strings with fewer than three vertices have no turns.
func Turns(ls *geom.LineString) (turns []float64, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			turns = nil
			err = recoveredErr
		}
	}()
	if ls == nil || ls.NumCoords() < 3 {
		return nil, nil
	}

	n := ls.NumCoords()
	turns = make([]float64, 0, n-2)
	prev := advanced.MustPoint2(vertexName(0), ls.Coord(0))
	cur := advanced.MustPoint2(vertexName(1), ls.Coord(1))
	for i := 2; i < n; i++ {
		next := advanced.MustPoint2(vertexName(i), ls.Coord(i))
		turns = append(turns, advanced.Orient2D(prev, cur, next))
		prev, cur = cur, next
	}
	return turns, nil
}

func vertexName(i int) string {
	return "#" + strconv.Itoa(i)
}
