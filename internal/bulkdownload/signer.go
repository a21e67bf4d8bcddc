package bulkdownload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rohits-web03/cellportal/internal/telemetry"
)

// DefaultSignedURLTTL is how long a signed URL stays usable.
const DefaultSignedURLTTL = 24 * time.Hour

type SignerOptions struct {
	Expires time.Duration
	Retry   RetryPolicy
	// Retryable classifies signer errors as transient.
	Retryable func(error) bool
}

// SignedURLGenerator turns descriptors into curl blocks. A failed signature
// becomes a comment block and never fails the batch.
type SignedURLGenerator struct {
	newSigner SignerFactory
	opts      SignerOptions
	reporter  ErrorReporter
	log       *slog.Logger
	metrics   *telemetry.Metrics
}

func NewSignedURLGenerator(newSigner SignerFactory, opts SignerOptions, reporter ErrorReporter, log *slog.Logger, metrics *telemetry.Metrics) *SignedURLGenerator {
	if opts.Expires <= 0 {
		opts.Expires = DefaultSignedURLTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &SignedURLGenerator{
		newSigner: newSigner,
		opts:      opts,
		reporter:  reporter,
		log:       log,
		metrics:   metrics,
	}
}

func (g *SignedURLGenerator) Sign(ctx context.Context, desc FileDescriptor) Block {
	loc := desc.Location()
	var signed string
	err := g.opts.Retry.Do(ctx, g.opts.Retryable,
		func(attempt int, err error) {
			g.metrics.Retry("sign")
			g.log.DebugContext(ctx, "Retrying signed URL", "bucket", loc.Bucket, "object", loc.Object,
				"attempt", attempt, "error", err)
		},
		func(ctx context.Context) error {
			signer, err := g.newSigner()
			if err != nil {
				return fmt.Errorf("create signer: %w", err)
			}
			signed, err = signer.SignURL(ctx, loc.Bucket, loc.Object, g.opts.Expires)
			return err
		})
	if err != nil {
		g.metrics.SignedURL("error")
		if g.reporter != nil {
			g.reporter.Report(ctx, err, map[string]any{
				"operation": "sign",
				"bucket":    loc.Bucket,
				"object":    loc.Object,
				"output":    desc.OutputPath(),
			})
		}
		return SignErrorBlock(desc.OutputPath())
	}
	g.metrics.SignedURL("ok")
	return URLBlock(signed, desc.OutputPath())
}

// SignAll signs descriptors concurrently; block i belongs to descriptors[i].
func (g *SignedURLGenerator) SignAll(ctx context.Context, descriptors []FileDescriptor, concurrency int) []Block {
	blocks := make([]Block, len(descriptors))
	fanOut(concurrency, len(descriptors), func(i int) {
		blocks[i] = g.Sign(ctx, descriptors[i])
	})
	return blocks
}
