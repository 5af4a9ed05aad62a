package polyhedron

// Orientation describes which way face normals point relative to the
// polyhedron centroid.
type Orientation int

const (
	Degenerate Orientation = iota
	Outward
	Inward
	Mixed
)

func (o Orientation) String() string {
	switch o {
	case Outward:
		return "outward"
	case Inward:
		return "inward"
	case Mixed:
		return "mixed"
	default:
		return "degenerate"
	}
}

// Orientation classifies the face windings. Each face normal (right-hand rule
// over its loop) is compared with the direction from the face toward the
// vertex centroid: a normal pointing towards the centroid is inward.
//
// The centroid is an interior reference point only for polyhedra that are
// star-shaped about it (all convex solids), so the answer is meaningful for
// those. Zero-area faces are ignored; if every face is degenerate the result
// is Degenerate.
func (p *Polyhedron) Orientation() Orientation {
	centroid := p.Centroid()
	outward, inward := 0, 0

	for i := range p.Faces {
		plane := p.FacePlane(i)
		if !plane.Valid {
			continue
		}

		// Signed distance of the centroid: negative means the normal points
		// away from it
		if plane.SignedDistance(centroid) > 0 {
			inward++
		} else {
			outward++
		}
	}

	switch {
	case outward == 0 && inward == 0:
		return Degenerate
	case inward == 0:
		return Outward
	case outward == 0:
		return Inward
	default:
		return Mixed
	}
}
