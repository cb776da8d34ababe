package offset_elevation_corrector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorrectElevation(t *testing.T) {
	corrector := NewOffsetElevationCorrector(2.5)
	require.Equal(t, 7.5, corrector.CorrectElevation(0, 0, 5))

	identity := NewOffsetElevationCorrector(0)
	require.Equal(t, 5.0, identity.CorrectElevation(1, 2, 5))
}
