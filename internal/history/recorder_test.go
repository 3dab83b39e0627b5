package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tuanngd/awxtool/internal/awx"
)

type stubExecutor struct {
	res *awx.Result
	err error
}

func (s *stubExecutor) Do(context.Context, awx.RequestSpec) (*awx.Result, error) {
	return s.res, s.err
}

func TestWrapExecutorRecordsRuns(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), DbFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = st.Close() }()

	exec := WrapExecutor(&stubExecutor{res: &awx.Result{StatusCode: 200, OK: true}}, st)
	spec := awx.RequestSpec{Method: "GET", Path: "/api/v2/ping/", Tool: "ping"}
	if _, err := exec.Do(context.Background(), spec); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	failing := WrapExecutor(&stubExecutor{err: awx.Networkf("connection refused")}, st)
	if _, err := failing.Do(context.Background(), spec); err == nil {
		t.Fatal("expected network error to propagate")
	}

	runs, err := st.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if !runs[0].Failed || runs[0].StatusCode != 0 {
		t.Fatalf("network failure not recorded as failed: %+v", runs[0])
	}
	if runs[1].Failed || runs[1].StatusCode != 200 || runs[1].Tool != "ping" {
		t.Fatalf("success not recorded: %+v", runs[1])
	}
}

func TestWrapExecutorNilStore(t *testing.T) {
	base := &stubExecutor{res: &awx.Result{StatusCode: 200, OK: true}}
	if got := WrapExecutor(base, nil); got != awx.Executor(base) {
		t.Fatal("nil store should return the executor unchanged")
	}
}
