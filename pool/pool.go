// Package pool fans pairwise alignment jobs out across a fixed worker pool:
// one goroutine per worker reading a buffered jobs channel and writing a
// buffered results channel, joined with a sync.WaitGroup so the results
// channel can be closed once every worker has drained its input.
package pool

import (
	"runtime"
	"sync"

	"github.com/tgillet1/treeseqalign"
	"github.com/tgillet1/treeseqalign/progress"
)

// Job is one pairwise alignment request submitted to a Pool.
type Job struct {
	ID          int
	S1, S2      *treeseqalign.Sequence
	Costs       treeseqalign.Costs
	SubstMatrix *treeseqalign.SubstMatrix
	NodeTypes   treeseqalign.NodeTypes
}

// JobResult pairs a Job's ID with its outcome.
type JobResult struct {
	ID     int
	Result treeseqalign.Result
	Err    error
}

// Pool runs Align for each submitted Job on a fixed-size worker pool.
type Pool struct {
	jobs    chan Job
	results chan JobResult
	wg      sync.WaitGroup
	closer  sync.Once
}

// New starts a Pool with workers workers (GOMAXPROCS if workers <= 0),
// buffering up to queueSize pending jobs and results.
func New(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if queueSize <= 0 {
		queueSize = workers
	}

	p := &Pool{
		jobs:    make(chan Job, queueSize),
		results: make(chan JobResult, queueSize),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		result, err := treeseqalign.Align(job.S1, job.S2, job.Costs, job.SubstMatrix, job.NodeTypes)
		p.results <- JobResult{ID: job.ID, Result: result, Err: err}
	}
}

// Submit enqueues a Job. It blocks if the pool's queue is full.
func (p *Pool) Submit(j Job) {
	p.jobs <- j
}

// Close signals that no more jobs will be submitted. Results is still safe
// to drain after calling Close.
func (p *Pool) Close() {
	close(p.jobs)
}

// Results returns the channel every worker's JobResult is sent to. The
// channel closes once Close has been called and every queued job has
// finished.
func (p *Pool) Results() <-chan JobResult {
	p.closer.Do(func() {
		go func() {
			p.wg.Wait()
			close(p.results)
		}()
	})
	return p.results
}

// Pair is one sequence pair to align, as submitted to Run.
type Pair struct {
	S1, S2      *treeseqalign.Sequence
	Costs       treeseqalign.Costs
	SubstMatrix *treeseqalign.SubstMatrix
	NodeTypes   treeseqalign.NodeTypes
}

// Run is the convenience entry point for aligning a fixed list of pairs: it
// builds a Pool of workers workers (GOMAXPROCS if workers <= 0), submits
// every pair, reports progress through a progress.Bar as each pair
// finishes, and returns results indexed the same as pairs (results[i]
// answers pairs[i], regardless of completion order).
func Run(pairs []Pair, workers int) []JobResult {
	p := New(workers, len(pairs))
	go func() {
		for i, pr := range pairs {
			p.Submit(Job{
				ID: i, S1: pr.S1, S2: pr.S2,
				Costs: pr.Costs, SubstMatrix: pr.SubstMatrix, NodeTypes: pr.NodeTypes,
			})
		}
		p.Close()
	}()

	bar := progress.NewBar("aligning", uint64(len(pairs)))
	results := make([]JobResult, len(pairs))
	for r := range p.Results() {
		results[r.ID] = r
		bar.Increment()
		bar.Render()
	}
	return results
}
