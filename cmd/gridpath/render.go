package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/pathfinding"
	"github.com/katalvlaran/tilepath/tile"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Render glyphs on top of tile.FromLayout's.
const (
	glyphVisited = '+'
	glyphPath    = '*'
)

// render draws the snapshot with visited and path marks. The start and the
// End keep their own glyphs.
func render(req pathfinding.Request, res gridgraph.Result) string {
	grid := make([][]rune, req.Rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(tile.GlyphOpen), req.Cols))
	}
	pos := make(map[int]tile.Pos, len(req.Tiles))
	for _, d := range req.Tiles {
		pos[d.ID] = d.Pos()
		switch d.Kind {
		case tile.Wall:
			grid[d.Row][d.Col] = tile.GlyphWall
		case tile.End:
			grid[d.Row][d.Col] = tile.GlyphEnd
		}
	}
	mark := func(ids []int, g rune) {
		for _, id := range ids {
			p, ok := pos[id]
			if ok && grid[p.Row][p.Col] == tile.GlyphOpen {
				grid[p.Row][p.Col] = g
			}
		}
	}
	if p, ok := pos[req.CurrentID]; ok {
		grid[p.Row][p.Col] = tile.GlyphStart
	}
	mark(res.Path, glyphPath)
	mark(res.Visited, glyphVisited)

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func summary(alg pathfinding.Algorithm, res gridgraph.Result) string {
	if !res.Reached {
		return fmt.Sprintf("%s: goal not reached after %s expansions", alg, humanize.Comma(int64(len(res.Visited))))
	}
	return fmt.Sprintf("%s: %s expansions, %s tiles, cost %s",
		alg,
		humanize.Comma(int64(len(res.Visited))),
		humanize.Comma(int64(len(res.Path))),
		humanize.Comma(res.Cost))
}

type solution struct {
	Name      string   `json:"name,omitempty"`
	Algorithm string   `json:"algorithm"`
	Reached   bool     `json:"reached"`
	Cost      int64    `json:"cost"`
	Visited   []int    `json:"visited"`
	Path      []int    `json:"path"`
	Grid      []string `json:"grid"`
}

func writeJSON(w io.Writer, name string, req pathfinding.Request, res gridgraph.Result) error {
	doc := solution{
		Name:      name,
		Algorithm: req.Config.Algorithm.String(),
		Reached:   res.Reached,
		Cost:      res.Cost,
		Visited:   res.Visited,
		Path:      res.Forward(),
		Grid:      strings.Split(strings.TrimSuffix(render(req, res), "\n"), "\n"),
	}
	bs, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", bs)
	return err
}
