package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/termtrack/termtrack/internal/model"
)

type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error { return r.err }

type mockJob struct {
	id   int
	err  error
	runs *atomic.Int64
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.runs != nil {
		j.runs.Add(1)
	}
	return &mockResult{id: j.id, err: j.err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var runs atomic.Int64
	const n = 20
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(&mockJob{id: i, runs: &runs})
		}
		pool.CloseAndWait()
	}()

	var ids []int
	for res := range pool.Results() {
		ids = append(ids, res.(*mockResult).id)
	}
	if len(ids) != n {
		t.Fatalf("Expected %d results, got %d", n, len(ids))
	}
	if runs.Load() != n {
		t.Errorf("Expected %d executions, got %d", n, runs.Load())
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			t.Errorf("Missing or duplicated job id at %d: %d", i, id)
		}
	}
}

func TestPool_WorkerCountClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()
	go func() {
		pool.Submit(&mockJob{id: 1})
		pool.CloseAndWait()
	}()
	count := 0
	for range pool.Results() {
		count++
	}
	if count != 1 {
		t.Errorf("Expected 1 result from a clamped single-worker pool, got %d", count)
	}
}

func TestPool_StopDropsPendingJobs(t *testing.T) {
	pool := NewPool(1)
	pool.Stop()
	pool.Submit(&mockJob{id: 1}) // must not block after Stop

	done := make(chan struct{})
	go func() {
		pool.Start()
		pool.CloseAndWait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pool did not drain after Stop")
	}
}

type stubRunner struct {
	calls atomic.Int64
	fail  map[string]bool
}

func (s *stubRunner) ExtractFile(ctx context.Context, path string) (*model.Report, error) {
	s.calls.Add(1)
	if s.fail[path] {
		return nil, errors.New("decode failed")
	}
	return &model.Report{Source: path, ItemCount: 1}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	runner := &stubRunner{fail: map[string]bool{"b.txt": true}}
	paths := []string{"a.txt", "b.txt", "c.txt"}

	bp := NewBatchProcessor(runner, 2, 0)
	results := bp.Process(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}
	if runner.calls.Load() != int64(len(paths)) {
		t.Errorf("Expected %d runner calls, got %d", len(paths), runner.calls.Load())
	}

	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
			if res.Path != "b.txt" {
				t.Errorf("Unexpected failing path %q", res.Path)
			}
		} else if res.Report == nil {
			t.Errorf("Successful result for %q carries no report", res.Path)
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_CanceledContextStopsSubmission(t *testing.T) {
	runner := &stubRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var paths []string
	for i := 0; i < 50; i++ {
		paths = append(paths, fmt.Sprintf("f%d.txt", i))
	}
	bp := NewBatchProcessor(runner, 2, 0)
	results := bp.Process(ctx, paths)
	if len(results) == len(paths) {
		t.Error("Expected submission to stop early on canceled context")
	}
}

func TestLimiter_NilMeansUnlimited(t *testing.T) {
	var l *Limiter
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("Nil limiter must not throttle: %v", err)
	}
	if NewLimiter(0, 1) != nil {
		t.Error("Non-positive rate should produce a nil limiter")
	}
}

func TestLimiter_Throttles(t *testing.T) {
	l := NewLimiter(50, 1)
	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	// 5 acquisitions at 50/s needs at least ~80ms
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Limiter did not throttle: %v", elapsed)
	}
}
