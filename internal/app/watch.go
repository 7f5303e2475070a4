package app

import (
	"context"
	"fmt"

	"go.trai.ch/rscript/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Watch runs the script, then runs it again every time it changes until ctx is
// cancelled. Only script files can be watched.
func (a *App) Watch(ctx context.Context, opts RunOptions) (int, error) {
	if opts.Expr {
		return 1, domain.ErrWatchRequiresFile
	}

	input, err := a.resolver.Resolve(opts.Script)
	if err != nil {
		return 1, err
	}

	watcher, err := a.newWatcher()
	if err != nil {
		return 1, err
	}
	defer func() {
		_ = watcher.Stop()
	}()

	g, ctx := errgroup.WithContext(ctx)

	if err := watcher.Start(ctx, input.Path()); err != nil {
		return 1, err
	}

	changes := make(chan struct{}, 1)

	// Event Routine
	g.Go(func() error {
		defer close(changes)
		for event := range watcher.Events() {
			a.logger.Debug("changed: " + event.Path)
			select {
			case changes <- struct{}{}:
			default:
				// A re-run is already pending.
			}
		}
		return nil
	})

	// Run Routine
	g.Go(func() error {
		a.rerun(ctx, opts)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				a.rerun(ctx, opts)
			}
		}
	})

	return 0, g.Wait()
}

func (a *App) rerun(ctx context.Context, opts RunOptions) {
	code, err := a.runOnce(ctx, opts)
	switch {
	case err != nil:
		a.logger.Error(err)
	case code != 0:
		a.logger.Warn(fmt.Sprintf("%s exited with status %d", opts.Script, code))
	}
	a.logger.Info("waiting for changes to " + opts.Script)
}
