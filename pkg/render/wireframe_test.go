package render

import (
	"image/color"
	"testing"

	"github.com/taigrr/wirepipe/pkg/math3d"
	"github.com/taigrr/wirepipe/pkg/models"
	"github.com/taigrr/wirepipe/pkg/pipeline"
)

type segment struct {
	x0, y0, x1, y1 int
}

// recorder is a pipeline.LineDrawer that remembers every call.
type recorder struct {
	lines  []segment
	colors []color.RGBA
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	r.lines = append(r.lines, segment{x0, y0, x1, y1})
	r.colors = append(r.colors, c)
}

func newTestWireframe() (*Wireframe, *recorder) {
	rec := &recorder{}
	w := NewWireframe(NewCamera(), pipeline.New(rec, panel))
	w.Begin()
	return w, rec
}

func inPanel(s segment) bool {
	in := func(x, y int) bool {
		return x >= panel.MinX && x <= panel.MaxX && y >= panel.MinY && y <= panel.MaxY
	}
	return in(s.x0, s.y0) && in(s.x1, s.y1)
}

func TestDrawMeshVisible(t *testing.T) {
	w, rec := newTestWireframe()

	if !w.DrawMesh(models.NewCube(1), math3d.Identity(), ColorGreen) {
		t.Fatal("cube in front of the camera was culled")
	}

	if len(rec.lines) != 12 {
		t.Errorf("lines = %d, want 12", len(rec.lines))
	}
	for i, s := range rec.lines {
		if !inPanel(s) {
			t.Errorf("line %d %v leaves the panel", i, s)
		}
		if rec.colors[i] != ColorGreen {
			t.Errorf("line %d color = %v", i, rec.colors[i])
		}
	}

	// Chained edges share endpoints, so only 5 pen moves are needed.
	if got := w.Pipeline().Stats.Moves; got != 5 {
		t.Errorf("moves = %d, want 5", got)
	}
	if w.Pipeline().Depth() != 0 {
		t.Error("DrawMesh left a transform pushed")
	}
}

func TestDrawMeshCulled(t *testing.T) {
	w, rec := newTestWireframe()
	before := w.Pipeline().Transform

	if w.DrawMesh(models.NewCube(1), math3d.Translate(0, 0, 20), ColorWhite) {
		t.Error("cube behind the camera was drawn")
	}
	if len(rec.lines) != 0 {
		t.Errorf("culled mesh drew %d lines", len(rec.lines))
	}
	if w.Pipeline().Transform != before {
		t.Error("culling did not restore the transform")
	}
}

func TestDrawMeshPartlyVisible(t *testing.T) {
	w, rec := newTestWireframe()

	// Straddles the left edge of the view.
	if !w.DrawMesh(models.NewCube(1), math3d.Translate(-5, 0, 0), ColorWhite) {
		t.Fatal("straddling cube was culled")
	}
	if len(rec.lines) == 0 {
		t.Fatal("nothing drawn")
	}
	for i, s := range rec.lines {
		if !inPanel(s) {
			t.Errorf("line %d %v leaves the panel", i, s)
		}
	}
	if w.Pipeline().Stats.Clipped == 0 {
		t.Error("expected clipped segments")
	}
}

func TestBeginClearsStack(t *testing.T) {
	w, _ := newTestWireframe()
	p := w.Pipeline()
	p.Push()
	p.Compose(math3d.ScaleUniform(3))
	p.Push()

	w.Begin()
	if p.Depth() != 0 {
		t.Errorf("Depth = %d after Begin, want 0", p.Depth())
	}
	if p.Transform != NewCamera().Matrix() {
		t.Error("Begin should load the camera matrix")
	}
}

func TestDrawAxes(t *testing.T) {
	w, rec := newTestWireframe()
	w.DrawAxes(1)

	if len(rec.lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(rec.lines))
	}
	want := []color.RGBA{ColorRed, ColorGreen, ColorBlue}
	for i, c := range want {
		if rec.colors[i] != c {
			t.Errorf("axis %d color = %v, want %v", i, rec.colors[i], c)
		}
		if rec.lines[i].x0 != 63 || rec.lines[i].y0 != 32 {
			t.Errorf("axis %d starts at (%d, %d), want origin (63, 32)", i, rec.lines[i].x0, rec.lines[i].y0)
		}
	}
}

func TestDrawPointAndCube(t *testing.T) {
	w, rec := newTestWireframe()
	w.DrawPoint(math3d.Zero3(), 0.5, ColorYellow)
	if len(rec.lines) != 3 {
		t.Errorf("DrawPoint lines = %d, want 3", len(rec.lines))
	}

	rec.lines = nil
	w.DrawCube(math3d.V3(0, 0.5, 0), 1, ColorCyan)
	if len(rec.lines) != 12 {
		t.Errorf("DrawCube lines = %d, want 12", len(rec.lines))
	}
}

func TestDrawGrid(t *testing.T) {
	w, rec := newTestWireframe()
	w.Pipeline().Transform = w.Pipeline().Transform.Mul(math3d.Translate(0, -1, 0))
	w.DrawGrid(2, 1, ColorGray)

	if len(rec.lines) != 6 {
		t.Errorf("grid lines = %d, want 6", len(rec.lines))
	}
}

func BenchmarkDrawMesh(b *testing.B) {
	w := NewWireframe(NewCamera(), pipeline.New(discard{}, panel))
	mesh := models.NewOctahedron(2)
	model := math3d.Rotate(math3d.AxisY, 0.3)
	for b.Loop() {
		w.Begin()
		w.DrawMesh(mesh, model, ColorWhite)
	}
}

type discard struct{}

func (discard) DrawLine(int, int, int, int, color.RGBA) {}
