package field

import "fmt"

type ShadingMode uint8

// Supported shading modes.
const (
	// Raw predicted color, no normals.
	Albedo ShadingMode = iota

	// Lambertian lighting term broadcast to all three channels, discarding
	// the predicted color.
	Textureless

	// Predicted color scaled by the Lambertian lighting term.
	Lambertian
)

func (m ShadingMode) String() string {
	switch m {
	case Albedo:
		return "albedo"
	case Textureless:
		return "textureless"
	case Lambertian:
		return "lambertian"
	}
	return fmt.Sprintf("unknown(%d)", uint8(m))
}

// Parse a shading mode name.
func ParseShadingMode(name string) (ShadingMode, error) {
	switch name {
	case "albedo":
		return Albedo, nil
	case "textureless":
		return Textureless, nil
	case "lambertian":
		return Lambertian, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShadingMode, name)
}
