// Package pattern reads plaintext (.cells) patterns and stamps them into an
// engine.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lifeview/internal/core"
)

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name   string
	Cells  []core.Coord
	Width  int
	Height int
}

// Parse reads the plaintext format: lines starting with '!' are comments
// ("!Name: x" sets Name), 'O' or '*' is alive, '.' is dead. Short rows are
// padded with dead cells.
func Parse(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(r)
	line, y := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, "!") {
			if name, ok := strings.CutPrefix(text, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for x, ch := range []rune(text) {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Coord{X: x, Y: y})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected %q", line, x+1, ch)
			}
			p.Width = max(p.Width, x+1)
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p.Height = y
	return p, nil
}

// Load parses the pattern file at path.
func Load(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Centered returns the origin that puts the pattern's middle on (0, 0).
func (p *Pattern) Centered() core.Coord {
	return core.Coord{X: -p.Width / 2, Y: -p.Height / 2}
}

// Apply sets every live cell of p, offset by origin, then cleans up once.
func (p *Pattern) Apply(e core.Engine, origin core.Coord) {
	for _, c := range p.Cells {
		e.Set(core.Coord{X: origin.X + c.X, Y: origin.Y + c.Y}, true)
	}
	e.CleanUp()
}
