package usecases

import (
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// encodeCellPolyline encodes the route with the Google polyline codec,
// treating (row, col) as the coordinate pair. Clients decode it back into
// the cell sequence for drawing.
func encodeCellPolyline(cells []datastructure.Cell) string {
	coords := make([][]float64, 0, len(cells))
	for _, c := range cells {
		coords = append(coords, []float64{float64(c.GetRow()), float64(c.GetCol())})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodeCellPolyline is the inverse of the encoding above. Exposed for
// clients and tests.
func DecodeCellPolyline(encoded string) ([]datastructure.Cell, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	cells := make([]datastructure.Cell, 0, len(coords))
	for _, coord := range coords {
		cells = append(cells, datastructure.NewCell(int(coord[0]), int(coord[1])))
	}
	return cells, nil
}
