package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"

	"prepress/internal/config"
	"prepress/internal/logging"
)

const lockRetryDelay = 250 * time.Millisecond

// Rewriter performs the full prepare pass against a manifest on disk.
type Rewriter struct {
	path        string
	lockPath    string
	lockEnabled bool
	lockTimeout time.Duration
	logger      *slog.Logger
}

// NewRewriter builds a Rewriter from configuration. A nil logger disables
// log output.
func NewRewriter(cfg *config.Config, logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Rewriter{
		path:        cfg.Manifest.Path,
		lockPath:    cfg.LockPath(),
		lockEnabled: cfg.Lock.Enabled,
		lockTimeout: time.Duration(cfg.Lock.WaitTimeoutSeconds) * time.Second,
		logger:      logger,
	}
}

// Path returns the manifest path the rewriter operates on.
func (r *Rewriter) Path() string {
	return r.path
}

// Prepare reads the manifest, applies the publish transformations, and writes
// the result back in place. The file's permission bits are preserved. An
// advisory lock guards the read-modify-write cycle when enabled; failure to
// acquire it within the configured timeout is an error.
func (r *Rewriter) Prepare(ctx context.Context) (Result, error) {
	if r.lockEnabled {
		release, err := r.acquireLock(ctx)
		if err != nil {
			return Result{}, err
		}
		defer release()
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return Result{}, fmt.Errorf("stat manifest: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return Result{}, fmt.Errorf("read manifest: %w", err)
	}

	updated, result := Apply(string(data))
	r.logOutcome(result)

	if err := os.WriteFile(r.path, []byte(updated), info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("write manifest: %w", err)
	}

	r.logger.Info("manifest prepared",
		slog.String("path", r.path),
		slog.Bool("changed", result.Changed()),
	)
	return result, nil
}

func (r *Rewriter) acquireLock(ctx context.Context) (func(), error) {
	lock := flock.New(r.lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, r.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire manifest lock %s: %w", r.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("manifest lock %s held by another process", r.lockPath)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("release manifest lock", slog.String("path", r.lockPath), slog.Any("error", err))
		}
	}, nil
}

func (r *Rewriter) logOutcome(result Result) {
	for _, step := range result.Steps {
		if step.Matched || step.Name == StepEnsureDefault {
			continue
		}
		r.logger.Warn("pattern not found, step skipped",
			slog.String("step", step.Name),
			slog.String("path", r.path),
		)
	}
	if !result.DefaultPresent {
		r.logger.Warn("empty transport feature missing and no insertion point found",
			slog.String("path", r.path),
		)
	}
}

// Read loads the manifest text for read-only inspection.
func (r *Rewriter) Read() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	return string(data), nil
}
