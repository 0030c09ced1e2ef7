package appspec

// InstanceSize is an instance size slug. Slugs are opaque validated tokens;
// their pricing and capacity meaning belongs to the platform.
type InstanceSize string

// Instance size slugs.
const (
	SizeBasicXXS       InstanceSize = "basic-xxs"
	SizeBasicXS        InstanceSize = "basic-xs"
	SizeBasicS         InstanceSize = "basic-s"
	SizeBasicM         InstanceSize = "basic-m"
	SizeProfessionalXS InstanceSize = "professional-xs"
	SizeProfessionalS  InstanceSize = "professional-s"
	SizeProfessionalM  InstanceSize = "professional-m"
	SizeProfessionalL  InstanceSize = "professional-l"
)

// InstanceSizes returns the recognized slugs in ascending capacity order.
func InstanceSizes() []InstanceSize {
	return []InstanceSize{
		SizeBasicXXS,
		SizeBasicXS,
		SizeBasicS,
		SizeBasicM,
		SizeProfessionalXS,
		SizeProfessionalS,
		SizeProfessionalM,
		SizeProfessionalL,
	}
}
