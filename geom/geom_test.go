package geom

import (
	"testing"
)

func TestAll(t *testing.T) {
	dirs := All()
	if len(dirs) != 8 {
		t.Fatalf("len(All()) = %d, want 8", len(dirs))
	}

	seen := make(map[Direction]bool)
	for _, d := range dirs {
		if !d.Valid() {
			t.Errorf("All() contains invalid direction %v", d)
		}
		if seen[d] {
			t.Errorf("All() contains %v twice", d)
		}
		seen[d] = true
	}

	// Every unit step in {-1,0,1}^2 except the origin must be present.
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if !seen[Direction{DRow: dr, DCol: dc}] {
				t.Errorf("All() is missing (%d,%d)", dr, dc)
			}
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	dirs := All()
	dirs[0] = Direction{}
	if All()[0] != North {
		t.Error("mutating the result of All() changed the canonical set")
	}
}

func TestDiagonals(t *testing.T) {
	dirs := Diagonals()
	if len(dirs) != 4 {
		t.Fatalf("len(Diagonals()) = %d, want 4", len(dirs))
	}
	seen := make(map[Direction]bool)
	for _, d := range dirs {
		if !d.IsDiagonal() {
			t.Errorf("Diagonals() contains non-diagonal %v", d)
		}
		seen[d] = true
	}
	if len(seen) != 4 {
		t.Errorf("Diagonals() has %d distinct entries, want 4", len(seen))
	}
}

func TestOrthogonals(t *testing.T) {
	dirs := Orthogonals()
	if len(dirs) != 4 {
		t.Fatalf("len(Orthogonals()) = %d, want 4", len(dirs))
	}
	for _, d := range dirs {
		if d.IsDiagonal() || !d.Valid() {
			t.Errorf("Orthogonals() contains %v", d)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	tests := []struct {
		d    Direction
		want bool
	}{
		{North, true},
		{SouthWest, true},
		{Direction{}, false},
		{Direction{DRow: 2, DCol: 0}, false},
		{Direction{DRow: 0, DCol: -2}, false},
	}

	for _, tt := range tests {
		if got := tt.d.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	for _, d := range All() {
		o := d.Opposite()
		if o == d {
			t.Errorf("%v.Opposite() = itself", d)
		}
		if o.Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, o.Opposite())
		}
	}
	if North.Opposite() != South {
		t.Errorf("North.Opposite() = %v, want S", North.Opposite())
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{North, "N"},
		{NorthEast, "NE"},
		{SouthWest, "SW"},
		{Direction{DRow: 3, DCol: 0}, "Direction(3,0)"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPointStep(t *testing.T) {
	p := Point{Row: 2, Col: 3}
	if got := p.Add(NorthWest); got != (Point{Row: 1, Col: 2}) {
		t.Errorf("Add(NW) = %v, want (1,2)", got)
	}
	if got := p.Step(South, 3); got != (Point{Row: 5, Col: 3}) {
		t.Errorf("Step(S, 3) = %v, want (5,3)", got)
	}
	if got := p.Step(East, 0); got != p {
		t.Errorf("Step(E, 0) = %v, want %v", got, p)
	}
	if got := p.Step(West, 4); got != (Point{Row: 2, Col: -1}) {
		t.Errorf("Step(W, 4) = %v, want (2,-1)", got)
	}
}

func TestParseDirections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"all", "all", 8, false},
		{"diagonal", "diagonal", 4, false},
		{"names", "n, se ,W", 3, false},
		{"duplicates", "N,N,orthogonal", 4, false},
		{"mixed", "diagonal,orthogonal", 8, false},
		{"unknown", "N,up", 0, true},
		{"empty", " , ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirections(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirections(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Errorf("ParseDirections(%q) = %v, want %d directions", tt.input, got, tt.want)
			}
		})
	}
}
