package showcase

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/errgroup"
)

// PreloadError is the error class for asset loading failures.
var PreloadError = errs.Class("preload")

// defaultPreloadWorkers bounds concurrent decodes.
const defaultPreloadWorkers = 4

// Textures is the immutable asset-key to image map produced by Preload.
// A nil *Textures behaves as an empty map.
type Textures struct {
	images map[string]*ebiten.Image
}

// NewTextures wraps images. The map is copied.
func NewTextures(images map[string]*ebiten.Image) *Textures {
	t := &Textures{images: make(map[string]*ebiten.Image, len(images))}
	for k, v := range images {
		t.images[k] = v
	}
	return t
}

// Get returns the texture for key.
func (t *Textures) Get(key string) (*ebiten.Image, bool) {
	if t == nil {
		return nil, false
	}
	img, ok := t.images[key]
	return img, ok
}

// Len returns the number of textures.
func (t *Textures) Len() int {
	if t == nil {
		return 0
	}
	return len(t.images)
}

// OpenFunc opens the asset named key.
type OpenFunc func(key string) (io.ReadCloser, error)

// DirOpener resolves asset keys relative to dir.
func DirOpener(dir string) OpenFunc {
	return func(key string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, filepath.FromSlash(key)))
	}
}

// ProgressFunc is called after every decoded asset. Calls are serialized.
type ProgressFunc func(loaded, total int)

// PreloadOptions configures Preload.
type PreloadOptions struct {
	Log      *zap.Logger
	Open     OpenFunc
	Progress ProgressFunc
	// Workers bounds concurrent decodes. Zero means a small default.
	Workers int
}

// Preload decodes every asset and uploads it as an ebiten image. It fails
// as a whole on the first asset that cannot be opened or decoded.
func Preload(ctx context.Context, assets []string, opts PreloadOptions) (_ *Textures, err error) {
	defer mon.Task()(&ctx)(&err)

	decoded, err := decodeAssets(ctx, assets, opts)
	if err != nil {
		return nil, err
	}
	images := make(map[string]*ebiten.Image, len(decoded))
	for key, img := range decoded {
		images[key] = ebiten.NewImageFromImage(img)
	}
	return NewTextures(images), nil
}

// decodeAssets opens and decodes assets concurrently, at most opts.Workers
// at a time. The first failure cancels assets not yet started.
func decodeAssets(ctx context.Context, assets []string, opts PreloadOptions) (map[string]image.Image, error) {
	if opts.Open == nil {
		return nil, PreloadError.New("no opener")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultPreloadWorkers
	}

	var (
		mu     sync.Mutex
		out    = make(map[string]image.Image, len(assets))
		loaded int
	)
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, key := range assets {
		if gctx.Err() != nil {
			break
		}
		key := key
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return PreloadError.Wrap(err)
			}
			img, size, err := decodeAsset(opts.Open, key)
			if err != nil {
				return err
			}
			mon.IntVal(metricPreloadBytes).Observe(size)
			mon.Counter(metricPreloadAssets).Inc(1)

			log.Debug("asset loaded", zap.String("key", key), zap.Int64("bytes", size))

			mu.Lock()
			defer mu.Unlock()
			out[key] = img
			loaded++
			if opts.Progress != nil {
				opts.Progress(loaded, len(assets))
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, PreloadError.Wrap(err)
	}
	return out, nil
}

func decodeAsset(open OpenFunc, key string) (image.Image, int64, error) {
	rc, err := open(key)
	if err != nil {
		return nil, 0, PreloadError.New("open %q: %v", key, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, 0, PreloadError.New("read %q: %v", key, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, PreloadError.New("decode %q: %v", key, err)
	}
	return img, int64(len(data)), nil
}
