package history

import (
	"context"

	"github.com/tuanngd/awxtool/internal/awx"
	"github.com/tuanngd/awxtool/internal/common"
)

// recordingExecutor wraps an executor and appends one run per exchange.
// Validation failures never reach the wrapped executor and are not recorded.
type recordingExecutor struct {
	next  awx.Executor
	store *Store
}

// WrapExecutor decorates exec so every request it performs is recorded in st.
// A nil store returns exec unchanged.
func WrapExecutor(exec awx.Executor, st *Store) awx.Executor {
	if st == nil {
		return exec
	}
	return &recordingExecutor{next: exec, store: st}
}

func (r *recordingExecutor) Do(ctx context.Context, spec awx.RequestSpec) (*awx.Result, error) {
	res, err := r.next.Do(ctx, spec)

	status := 0
	failed := err != nil
	if res != nil {
		status = res.StatusCode
		failed = failed || !res.OK
	}
	if recErr := r.store.Record(spec.Tool, spec.Method, spec.Path, status, failed); recErr != nil {
		// History is best effort; a write failure must not fail the call.
		common.GetLogger().WithComponent("history").Warn("failed to record run", "error", recErr)
	}
	return res, err
}
