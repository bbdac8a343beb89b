package shapes

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind is a primitive mesh type.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Prism
	Sphere
	HalfSphere
)

// Kinds lists every kind in load order.
var Kinds = []Kind{Plane, Box, Cylinder, Prism, Sphere, HalfSphere}

var kindNames = map[Kind]string{
	Plane:      "plane",
	Box:        "box",
	Cylinder:   "cylinder",
	Prism:      "prism",
	Sphere:     "sphere",
	HalfSphere: "halfsphere",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown mesh kind %q", s)
}

// Geometry returns the kind whose vertex data backs k.
// The half sphere is drawn out of the sphere buffers.
func (k Kind) Geometry() Kind {
	if k == HalfSphere {
		return Sphere
	}
	return k
}

// IndexRange returns the slice of a geometry index buffer of length total that k draws.
func (k Kind) IndexRange(total int) (first, count int) {
	if k == HalfSphere {
		return 0, total / 2
	}
	return 0, total
}
