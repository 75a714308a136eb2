package progress

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// Fleet runs several reporters concurrently, one per followed chain, on a
// shared worker pool.
type Fleet struct {
	reporters []*Reporter
	logger    *zap.Logger
}

func NewFleet(logger *zap.Logger, reporters ...*Reporter) *Fleet {
	return &Fleet{reporters: reporters, logger: logger}
}

// Run blocks until ctx is cancelled and every reporter has stopped.
func (f *Fleet) Run(ctx context.Context) {
	if len(f.reporters) == 0 {
		return
	}
	pool := pond.NewPool(len(f.reporters))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for _, r := range f.reporters {
		group.Submit(func() {
			r.Run(groupCtx)
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		f.logger.Warn("progress fleet stopped abnormally", zap.Error(err))
		return
	}
	f.logger.Debug("progress fleet stopped", zap.Int("reporters", len(f.reporters)))
}
