package profilegen

import (
	internalLoader "github.com/goliatone/go-profilegen/internal/profile/loader"
	"github.com/goliatone/go-profilegen/pkg/profile"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...profile.LoaderOption) profile.Loader {
	cfg := profile.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
