package geom

import "testing"

type point struct{ x, y int }

func collect(fn func(PlotFunc)) []point {
	var pts []point
	fn(func(x, y int) { pts = append(pts, point{x, y}) })
	return pts
}

func TestTrimLineClipsHorizontal(t *testing.T) {
	x1, y1, x2, y2, ok := TrimLine(-10, 50, 1000, 50, 640, 480)
	if !ok || x1 != 0 || y1 != 50 || x2 != 639 || y2 != 50 {
		t.Fatalf("got (%d,%d)-(%d,%d), want (0,50)-(639,50)", x1, y1, x2, y2)
	}
}

func TestTrimLineVertical(t *testing.T) {
	x1, y1, x2, y2, ok := TrimLine(5, -10, 5, 1000, 640, 480)
	if !ok || x1 != 5 || y1 != 0 || x2 != 5 || y2 != 479 {
		t.Fatalf("got (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}
	x1, _, x2, _, _ = TrimLine(-3, 10, -3, 20, 640, 480)
	if x1 != 0 || x2 != 0 {
		t.Fatalf("vertical x not clamped: %d %d", x1, x2)
	}
}

func TestTrimLineDiagonal(t *testing.T) {
	x1, y1, x2, y2, _ := TrimLine(-10, -10, 700, 700, 640, 480)
	if x1 != 0 || y1 != 0 || x2 != 479 || y2 != 479 {
		t.Fatalf("got (%d,%d)-(%d,%d), want (0,0)-(479,479)", x1, y1, x2, y2)
	}
}

func TestTrimLineCollapsesInvisible(t *testing.T) {
	cases := [][4]int{
		{10, -5, 50, -5},
		{10, 500, 50, 500},
		{-100, -100, -50, -90},
	}
	for _, c := range cases {
		x1, y1, x2, y2, ok := TrimLine(c[0], c[1], c[2], c[3], 100, 100)
		if ok || x1 != 0 || y1 != 0 || x2 != 0 || y2 != 0 {
			t.Errorf("%v: got (%d,%d)-(%d,%d), want collapse", c, x1, y1, x2, y2)
		}
	}
}

func TestTrimLineEmptyViewport(t *testing.T) {
	x1, y1, x2, y2, ok := TrimLine(1, 2, 3, 4, 0, 10)
	if ok || x1|y1|x2|y2 != 0 {
		t.Fatalf("expected collapse for empty viewport")
	}
}

func TestTrimLineIdempotent(t *testing.T) {
	cases := [][4]int{
		{-10, 50, 1000, 50},
		{-10, -10, 700, 700},
		{100, 400, 300, -200},
		{639, 0, 0, 479},
		{320, 240, 321, 900},
		{5, 5, 5, 5},
	}
	for _, c := range cases {
		a1, b1, a2, b2, ok := TrimLine(c[0], c[1], c[2], c[3], 640, 480)
		if !ok {
			t.Errorf("%v: unexpectedly collapsed", c)
			continue
		}
		x1, y1, x2, y2, _ := TrimLine(a1, b1, a2, b2, 640, 480)
		if x1 != a1 || y1 != b1 || x2 != a2 || y2 != b2 {
			t.Errorf("%v: first (%d,%d)-(%d,%d), second (%d,%d)-(%d,%d)", c, a1, b1, a2, b2, x1, y1, x2, y2)
		}
		for _, v := range []int{a1, a2} {
			if v < 0 || v >= 640 {
				t.Errorf("%v: x %d outside viewport", c, v)
			}
		}
		for _, v := range []int{b1, b2} {
			if v < 0 || v >= 480 {
				t.Errorf("%v: y %d outside viewport", c, v)
			}
		}
	}
}

func TestHorizontalLineInclusive(t *testing.T) {
	pts := collect(func(p PlotFunc) { HorizontalLine(639, 0, 50, p) })
	if len(pts) != 640 {
		t.Fatalf("got %d points, want 640", len(pts))
	}
	if pts[0] != (point{0, 50}) || pts[639] != (point{639, 50}) {
		t.Fatalf("unexpected ends %v %v", pts[0], pts[639])
	}

	back := collect(func(p PlotFunc) { HorizontalLine(-3, 10, 1, p) })
	want := []point{{10, 1}, {9, 1}, {8, 1}, {7, 1}}
	if len(back) != len(want) {
		t.Fatalf("got %v, want %v", back, want)
	}
	for i := range want {
		if back[i] != want[i] {
			t.Fatalf("got %v, want %v", back, want)
		}
	}
}

func TestVerticalLineInclusive(t *testing.T) {
	pts := collect(func(p PlotFunc) { VerticalLine(-4, 2, 4, p) })
	if len(pts) != 5 || pts[4] != (point{2, 0}) {
		t.Fatalf("got %v", pts)
	}
}

func TestDiagonalLineReachesEndpoint(t *testing.T) {
	cases := [][4]int{
		{10, 3, 0, 0},
		{3, 10, 0, 0},
		{-7, 5, 20, 20},
		{6, -13, 1, 30},
		{-9, -9, 9, 9},
	}
	for _, c := range cases {
		dx, dy, x, y := c[0], c[1], c[2], c[3]
		pts := collect(func(p PlotFunc) { DiagonalLine(dx, dy, x, y, p) })
		n := max(absInt(dx), absInt(dy)) + 1
		if len(pts) != n {
			t.Errorf("%v: got %d points, want %d", c, len(pts), n)
			continue
		}
		if pts[0] != (point{x, y}) {
			t.Errorf("%v: first point %v", c, pts[0])
		}
		if last := pts[len(pts)-1]; last != (point{x + dx, y + dy}) {
			t.Errorf("%v: last point %v, want (%d,%d)", c, last, x+dx, y+dy)
		}
		for i := 1; i < len(pts); i++ {
			if absInt(pts[i].x-pts[i-1].x) > 1 || absInt(pts[i].y-pts[i-1].y) > 1 {
				t.Errorf("%v: gap between %v and %v", c, pts[i-1], pts[i])
			}
		}
	}
}

func TestCircleCardinalPoints(t *testing.T) {
	seen := map[point]bool{}
	for _, p := range collect(func(p PlotFunc) { Circle(20, 20, 5, p) }) {
		seen[p] = true
		d := (p.x-20)*(p.x-20) + (p.y-20)*(p.y-20)
		if d < 16 || d > 36 {
			t.Errorf("point %v too far from radius 5 (d²=%d)", p, d)
		}
	}
	for _, p := range []point{{25, 20}, {15, 20}, {20, 25}, {20, 15}} {
		if !seen[p] {
			t.Errorf("missing cardinal point %v", p)
		}
	}
}

func TestFilledCircleHasNoGaps(t *testing.T) {
	for r := 0; r <= 25; r++ {
		rows := map[int][2]int{}
		FilledCircle(0, 0, r, func(x0, x1, y int) {
			if x0 > x1 {
				t.Fatalf("r=%d: inverted span %d..%d", r, x0, x1)
			}
			cur, ok := rows[y]
			if !ok {
				rows[y] = [2]int{x0, x1}
				return
			}
			rows[y] = [2]int{min(cur[0], x0), max(cur[1], x1)}
		})
		if len(rows) != 2*r+1 {
			t.Errorf("r=%d: %d rows filled, want %d", r, len(rows), 2*r+1)
		}
		for y := -r; y <= r; y++ {
			span, ok := rows[y]
			if !ok {
				t.Errorf("r=%d: row %d empty", r, y)
				continue
			}
			if span[0] > 0 || span[1] < 0 {
				t.Errorf("r=%d: row %d span %v misses the center", r, y, span)
			}
		}
		if rows[0] != [2]int{-r, r} {
			t.Errorf("r=%d: center row %v", r, rows[0])
		}
	}
}

func TestEllipseUnit(t *testing.T) {
	seen := map[point]bool{}
	for _, p := range collect(func(p PlotFunc) { Ellipse(10, 10, 1, 1, p) }) {
		seen[p] = true
	}
	want := []point{{11, 10}, {9, 10}, {10, 11}, {10, 9}}
	for _, p := range want {
		if !seen[p] {
			t.Errorf("missing %v", p)
		}
	}
	if len(seen) != len(want) {
		t.Errorf("got %d distinct points, want %d", len(seen), len(want))
	}
}

func TestEllipseSymmetric(t *testing.T) {
	seen := map[point]bool{}
	for _, p := range collect(func(p PlotFunc) { Ellipse(0, 0, 7, 3, p) }) {
		seen[p] = true
	}
	for p := range seen {
		for _, m := range []point{{-p.x, p.y}, {p.x, -p.y}, {-p.x, -p.y}} {
			if !seen[m] {
				t.Errorf("point %v has no mirror %v", p, m)
			}
		}
	}
	if !seen[point{7, 0}] || !seen[point{-7, 0}] {
		t.Error("missing horizontal extremes")
	}
}

func TestEllipseZeroRadiusIsLine(t *testing.T) {
	pts := collect(func(p PlotFunc) { Ellipse(5, 5, 0, 3, p) })
	if len(pts) != 7 {
		t.Fatalf("got %d points, want 7", len(pts))
	}
	for _, p := range pts {
		if p.x != 5 {
			t.Fatalf("point %v off the vertical axis", p)
		}
	}
	pts = collect(func(p PlotFunc) { Ellipse(5, 5, 2, 0, p) })
	if len(pts) != 5 || pts[0] != (point{3, 5}) {
		t.Fatalf("got %v", pts)
	}
}

func TestInEllipse(t *testing.T) {
	if !InEllipse(4, 0, 4, 2) || !InEllipse(0, 2, 4, 2) || !InEllipse(0, 0, 4, 2) {
		t.Fatal("expected boundary/center inside")
	}
	if InEllipse(5, 0, 4, 2) || InEllipse(0, 3, 4, 2) || InEllipse(4, 2, 4, 2) {
		t.Fatal("expected points outside")
	}
}

func TestFilledEllipseCount(t *testing.T) {
	n := 0
	FilledEllipse(0, 0, 3, 3, func(x, y int) {
		if x*x+y*y > 9 {
			t.Errorf("(%d,%d) outside radius 3", x, y)
		}
		n++
	})
	// Lattice points with x²+y² <= 9.
	if n != 29 {
		t.Fatalf("got %d points, want 29", n)
	}
}

func TestArc(t *testing.T) {
	if pts := collect(func(p PlotFunc) { Arc(0, 0, 0, 10, 0, 360, p) }); len(pts) != 0 {
		t.Fatalf("zero width arc plotted %d points", len(pts))
	}
	pts := collect(func(p PlotFunc) { Arc(50, 50, 10, 5, 0, 360, p) })
	if len(pts) != 720 {
		t.Fatalf("got %d samples, want 720", len(pts))
	}
	if pts[0] != (point{60, 50}) {
		t.Fatalf("first sample %v, want (60,50)", pts[0])
	}
	// 90 degrees is sample 180.
	if pts[180] != (point{50, 55}) {
		t.Fatalf("sample at 90° %v, want (50,55)", pts[180])
	}
}

func TestSamplerUpscale(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	s, ok := NewSampler(2, 2, 4, 4)
	if !ok {
		t.Fatal("expected a sampler")
	}
	want := []int32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got := src[s.Index(j, i)]; got != want[i*4+j] {
				t.Fatalf("(%d,%d) = %d, want %d", j, i, got, want[i*4+j])
			}
		}
	}
}

func TestSamplerIdentityAndEmpty(t *testing.T) {
	s, ok := NewSampler(3, 3, 3, 3)
	if !ok {
		t.Fatal("expected a sampler")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := s.Index(j, i); got != i*3+j {
				t.Fatalf("identity scale maps (%d,%d) to %d", j, i, got)
			}
		}
	}
	for _, sz := range [][4]int{{3, 3, 0, 5}, {3, 3, 5, 0}, {0, 3, 2, 2}} {
		if _, ok := NewSampler(sz[0], sz[1], sz[2], sz[3]); ok {
			t.Fatalf("expected no sampler for %v", sz)
		}
	}
}

func TestSamplerHugeUpscaleStaysInSource(t *testing.T) {
	s, _ := NewSampler(1, 1, 1<<17, 1)
	if s.Index(1<<17-1, 0) != 0 {
		t.Fatal("upscale read outside source")
	}
}

func TestFilledEllipseInMatchesFilledEllipse(t *testing.T) {
	inside := map[point]bool{}
	FilledEllipse(2, 1, 4, 3, func(x, y int) {
		if x >= 0 && y >= 0 && x < 5 && y < 4 {
			inside[point{x, y}] = true
		}
	})
	n := 0
	FilledEllipseIn(2, 1, 4, 3, 5, 4, func(x, y int) {
		if !inside[point{x, y}] {
			t.Fatalf("(%d,%d) not in the full fill", x, y)
		}
		n++
	})
	if n != len(inside) {
		t.Fatalf("got %d points, want %d", n, len(inside))
	}
}

func TestFilledEllipseInHugeRadiiVisitsOnlySurface(t *testing.T) {
	n := 0
	FilledEllipseIn(5, 5, 1_000_000, 1_000_000, 10, 10, func(x, y int) { n++ })
	if n != 100 {
		t.Fatalf("got %d points, want the whole 10x10 surface", n)
	}
	if !InEllipse(1_000_000, 0, 1_000_000, 1_000_000) || InEllipse(1_000_000, 1, 1_000_000, 1_000_000) {
		t.Fatal("InEllipse wrong at large radii")
	}
}
