package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/shapes"
	"github.com/cs330/deskscene/utils"
)

// DrawInstruction places one mesh with its appearance.
// Empty Texture draws with the flat Color, empty Material uses DefaultMaterial.
type DrawInstruction struct {
	Name     string
	Mesh     shapes.Kind
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees
	Position mgl32.Vec3
	Color    utils.ColorFloat
	Texture  string
	Material string
	UVScale  mgl32.Vec2
}

func InstructionsFromConfig(draws []config.Draw) ([]DrawInstruction, error) {
	result := make([]DrawInstruction, 0, len(draws))
	for i, d := range draws {
		kind, err := shapes.ParseKind(d.Mesh)
		if err != nil {
			return nil, errors.Wrapf(err, "draw #%d %q", i, d.Name)
		}
		result = append(result, DrawInstruction{
			Name:     d.Name,
			Mesh:     kind,
			Scale:    d.Scale,
			Rotation: d.Rotation,
			Position: d.Position,
			Color:    utils.ColorFloat(d.Color),
			Texture:  d.Texture,
			Material: d.Material,
			UVScale:  d.UVScale,
		})
	}
	return result, nil
}
