// Package report summarizes a finished search for printing: endpoints,
// outcome, path length and cost, the path as text, and any path cells that
// should not have been walkable.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
)

// ErrPathAnomaly indicates the reconstructed path steps onto a non-passable cell.
// The search never admits such cells, so this points at a bug or a grid that
// changed after the search.
var ErrPathAnomaly = errors.New("report: path contains a non-passable cell")

// PathSeparator joins the cells of a rendered path
const PathSeparator = " -> "

// Anomaly is a path cell whose type does not allow traversal
type Anomaly struct {
	Step  int
	Point world.Point
	Type  world.CellType
}

// String describes the anomaly in one line
func (a Anomaly) String() string {
	return fmt.Sprintf("pos:%v wrong path type: %v", a.Point, a.Type)
}

// Report is the outcome of one search, detached from the grid
type Report struct {
	Length int
	Height int

	Start  world.Point
	Target world.Point

	Result   pathfind.Result
	Path     []world.Point
	Cost     int
	Expanded int

	Anomalies []Anomaly

	chainErr error
}

// Build collects the report for pf, running its search to completion first if needed
func Build(grid *world.Grid, pf *pathfind.PathFinder) *Report {
	result := pf.FindPath()
	r := &Report{
		Length:   grid.Length(),
		Height:   grid.Height(),
		Start:    grid.Start().Point(),
		Target:   grid.Target().Point(),
		Result:   result,
		Cost:     pf.Cost(),
		Expanded: pf.Expanded(),
	}

	cells, err := pf.ReconstructPathErr()
	r.chainErr = err
	r.Path = make([]world.Point, 0, len(cells))
	for i, c := range cells {
		r.Path = append(r.Path, c.Point())
		if !c.IsPassable() {
			r.Anomalies = append(r.Anomalies, Anomaly{Step: i, Point: c.Point(), Type: c.Type})
		}
	}

	return r
}

// Found returns true if the search reached the target
func (r *Report) Found() bool {
	return r.Result == pathfind.Found
}

// Err returns nil for a clean report. Anomalies wrap ErrPathAnomaly and a
// corrupt parent chain wraps the pathfind sentinel errors.
func (r *Report) Err() error {
	var errs []error
	if r.chainErr != nil {
		errs = append(errs, r.chainErr)
	}
	if len(r.Anomalies) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d cell(s), first %v", ErrPathAnomaly, len(r.Anomalies), r.Anomalies[0]))
	}
	return errors.Join(errs...)
}

// FormatPath renders points as "(x0, y0) -> (x1, y1) -> ... -> (xn, yn)"
func FormatPath(path []world.Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, PathSeparator)
}

// WriteTo prints the report in its labeled text form
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintln(&b, gotext.Get("start: %s", r.Start))
	fmt.Fprintln(&b, gotext.Get("target: %s", r.Target))
	fmt.Fprintln(&b, gotext.Get("grid: %dx%d", r.Length, r.Height))
	fmt.Fprintln(&b, gotext.Get("expanded: %d", r.Expanded))

	if r.Found() {
		fmt.Fprintln(&b, gotext.Get("length: %d", len(r.Path)))
		fmt.Fprintln(&b, gotext.Get("cost: %d", r.Cost))
		fmt.Fprintln(&b, gotext.Get("path: %s", FormatPath(r.Path)))
	} else {
		fmt.Fprintln(&b, gotext.Get("no path from %s to %s", r.Start, r.Target))
	}

	for _, a := range r.Anomalies {
		fmt.Fprintln(&b, gotext.Get("anomaly: %s", a))
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
