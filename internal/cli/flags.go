package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mselnes/forma/internal/domain"
)

// viewportFlag is a pflag.Value that only accepts the known viewport tiers.
type viewportFlag domain.Viewport

var _ pflag.Value = (*viewportFlag)(nil)

func (f *viewportFlag) String() string { return string(*f) }

func (f *viewportFlag) Set(s string) error {
	v := domain.Viewport(s)
	switch v {
	case domain.ViewportDesktop, domain.ViewportTablet, domain.ViewportMobile:
		*f = viewportFlag(v)
		return nil
	}
	return fmt.Errorf("unknown viewport %q (desktop, tablet, mobile)", s)
}

func (f *viewportFlag) Type() string { return "viewport" }
