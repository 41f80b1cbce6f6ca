package world

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/EnokiUN/rhywbeth/geometry"
)

// Load reads a wall layout from a map file. Each non-empty line holds one
// wall as "x1 y1 x2 y2 color"; '#' starts a comment. An empty map is an
// error since there would be nothing to render.
func Load(path string) ([]geometry.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var walls []geometry.Segment
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return nil, fmt.Errorf("map %s line %d: want 5 fields \"x1 y1 x2 y2 color\", got %d", path, lineNo, len(fields))
		}
		var coords [4]float64
		for i, field := range fields[:4] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("map %s line %d: bad coordinate %q", path, lineNo, field)
			}
			coords[i] = v
		}
		color, ok := geometry.ParseColor(fields[4])
		if !ok {
			return nil, fmt.Errorf("map %s line %d: unknown color %q", path, lineNo, fields[4])
		}
		a := geometry.Point{X: coords[0], Y: coords[1]}
		b := geometry.Point{X: coords[2], Y: coords[3]}
		if a == b {
			return nil, fmt.Errorf("map %s line %d: zero-length wall at %v", path, lineNo, a)
		}
		walls = append(walls, geometry.FromPoints(a, b, color))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(walls) == 0 {
		return nil, fmt.Errorf("map %s: no walls", path)
	}
	return walls, nil
}
