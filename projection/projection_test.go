package projection

import (
	"math"
	"testing"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/track"
)

const (
	testHorizon = 9
	testBottom  = 23
)

func TestDistanceMonotonicity(t *testing.T) {
	// Walking rows from near-bottom toward the horizon, distance must be
	// strictly increasing and road width strictly non-increasing
	prevD := 0.0
	prevW := math.Inf(1)
	for y := testBottom; y > testHorizon; y-- {
		d := Distance(RowT(y, testHorizon, testBottom))
		w := RoadWidth(d)
		if d <= prevD {
			t.Fatalf("distance not strictly increasing at row %d: %f <= %f", y, d, prevD)
		}
		if w > prevW {
			t.Fatalf("road width increased at row %d: %f > %f", y, w, prevW)
		}
		prevD = d
		prevW = w
	}
}

func TestDistanceBounds(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"Near edge", 0, 1},
		{"Horizon", 1, constants.MaxDistance},
		{"Below range clamps", -0.5, 1},
		{"Above range clamps", 1.5, constants.MaxDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%f) = %f, want %f", tt.t, got, tt.want)
			}
		})
	}
}

func TestDistanceDenominatorBounded(t *testing.T) {
	// The perspective divide must stay away from its asymptote across the
	// full row range
	for y := testBottom; y >= testHorizon; y-- {
		tv := RowT(y, testHorizon, testBottom)
		denom := 1.0 - tv*constants.PerspectiveK
		if denom < 1.0-constants.PerspectiveK-1e-9 {
			t.Fatalf("denominator %f below bound at row %d", denom, y)
		}
	}
}

func TestScreenYRoundTrip(t *testing.T) {
	for y := testBottom; y > testHorizon; y-- {
		d := Distance(RowT(y, testHorizon, testBottom))
		back := ScreenYForDistance(d, testHorizon, testBottom)
		if back != y {
			t.Errorf("row %d projected to distance %f, inverted to row %d", y, d, back)
		}
	}
}

func TestAccumulateCurveClosedForm(t *testing.T) {
	// Constant curvature 0.5: each 5-unit step contributes 0.5*0.5, so at
	// distance 10 the walk covers 10 steps from 0 to 50 world units
	trk := track.NewRoad("const", []track.Section{{Length: 10000, Curve: 0.5}})

	acc := AccumulateCurve(trk, 0, 10)
	if math.Abs(acc-2.5) > 1e-9 {
		t.Fatalf("accumulated curve = %f, want 2.5", acc)
	}

	offset := CurveOffset(acc, 10)
	if math.Abs(offset-20.0) > 1e-9 {
		t.Fatalf("curve offset = %f, want 20", offset)
	}

	centerX, _, _ := RoadEdges(trk, 0, 0, 10, 80)
	want := 40 + int(math.Round(2.5*10*0.8))
	if centerX != want {
		t.Fatalf("centerX = %d, want %d", centerX, want)
	}
}

func TestAccumulateCurveStraightRoad(t *testing.T) {
	trk := track.NewRoad("straight", []track.Section{{Length: 10000, Curve: 0}})
	if acc := AccumulateCurve(trk, 123, 15); acc != 0 {
		t.Errorf("straight road accumulated %f, want 0", acc)
	}
	centerX, left, right := RoadEdges(trk, 0, 0, 1, 80)
	if centerX != 40 {
		t.Errorf("centerX = %d, want 40", centerX)
	}
	if left != 8 || right != 72 {
		t.Errorf("edges = (%d, %d), want (8, 72)", left, right)
	}
}

func TestDistanceForOffset(t *testing.T) {
	tests := []struct {
		name   string
		dz     float64
		wantD  float64
		wantOK bool
	}{
		{"On the camera", 0, 0, false},
		{"Just ahead", 5, 1, true},
		{"Mid range", 50, 10, true},
		{"At horizon", 100, 20, true},
		{"Beyond horizon", 150, 30, false},
		{"Behind", -10, -2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DistanceForOffset(tt.dz)
			if ok != tt.wantOK {
				t.Fatalf("DistanceForOffset(%f) ok = %v, want %v", tt.dz, ok, tt.wantOK)
			}
			if math.Abs(d-tt.wantD) > 1e-9 {
				t.Errorf("DistanceForOffset(%f) = %f, want %f", tt.dz, d, tt.wantD)
			}
		})
	}
}

func TestEdgeAgreementAcrossPasses(t *testing.T) {
	// The road sweep derives distance from the row; the object placer
	// derives it from a world offset. For the same world-Z both must land
	// on the same edges within integer rounding
	trk := track.NewRoad("curvy", []track.Section{
		{Length: 500, Curve: 0.5},
		{Length: 500, Curve: -0.8},
		{Length: 500, Curve: 0},
	})

	for y := testBottom; y > testHorizon; y-- {
		dRow := Distance(RowT(y, testHorizon, testBottom))
		worldZ := WorldAhead(dRow) // camera at z0 = 0

		dObj, ok := DistanceForOffset(worldZ)
		if !ok {
			continue
		}
		_, l1, r1 := RoadEdges(trk, 0, 0.3, dRow, 80)
		_, l2, r2 := RoadEdges(trk, 0, 0.3, dObj, 80)

		if abs(l1-l2) > 1 || abs(r1-r2) > 1 {
			t.Errorf("row %d worldZ=%f: edges diverge beyond 1 cell: (%d,%d) vs (%d,%d)",
				y, worldZ, l1, r1, l2, r2)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
