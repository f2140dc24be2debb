package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-profilegen/pkg/profile"
)

// Loader implements profile.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ profile.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options profile.LoaderOptions) profile.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Payload.
func (l *Loader) Load(ctx context.Context, src profile.Source) (profile.Payload, error) {
	if src == nil {
		return profile.Payload{}, errors.New("profile loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case profile.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case profile.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case profile.SourceKindURL:
		if !l.allowHTTP {
			return profile.Payload{}, errors.New("profile loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("profile loader: unsupported source kind")
	}
	if err != nil {
		return profile.Payload{}, err
	}

	return profile.NewPayload(src, data)
}
