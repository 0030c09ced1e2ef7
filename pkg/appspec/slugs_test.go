package appspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceSizes_OrderedSmallestFirst(t *testing.T) {
	assert.Equal(t, []InstanceSize{
		SizeBasicXXS,
		SizeBasicXS,
		SizeBasicS,
		SizeBasicM,
		SizeProfessionalXS,
		SizeProfessionalS,
		SizeProfessionalM,
		SizeProfessionalL,
	}, InstanceSizes())
}

func TestPtr(t *testing.T) {
	p := Ptr(3000)
	assert.Equal(t, 3000, *p)

	s := Ptr("run")
	assert.Equal(t, "run", *s)
}
