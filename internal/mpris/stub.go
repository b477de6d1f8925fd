//go:build !linux

package mpris

import (
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/transport"
)

// Surface is a no-op on non-Linux platforms.
type Surface struct {
	transport.Nop
}

// New returns a no-op surface on non-Linux platforms.
func New(_ *zap.Logger) (*Surface, error) {
	return &Surface{}, nil
}
