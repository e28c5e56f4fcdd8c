package kernel

import (
	"runtime"
	"sync"
)

// pairTask is one leaf-pair's triangle-vs-triangle testing work.
type pairTask struct {
	pair leafPair
}

// pairHit is one confirmed triangle-triangle intersection within a task.
type pairHit struct {
	faceIDA, faceIDB int
}

// runPairTests tests every triangle in nodeA against every triangle in
// nodeB for each candidate leaf pair, spec.md §4.2 step 2, distributing
// the independent per-pair work across a worker pool — spec.md §5
// explicitly allows parallelizing this loop since pairs share nothing but
// the append-only result collector.
//
// Grounded on the teacher's renderer.WorkerPool (task/result channels,
// runtime.NumCPU default, one goroutine per worker reading from a shared
// task channel), generalized from tile-rendering tasks to triangle-pair
// tasks.
func runPairTests(pairs []leafPair, numWorkers int) []pairHit {
	if len(pairs) == 0 {
		return nil
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(pairs) {
		numWorkers = len(pairs)
	}

	taskCh := make(chan pairTask, len(pairs))
	for _, p := range pairs {
		taskCh <- pairTask{pair: p}
	}
	close(taskCh)

	resultsCh := make(chan []pairHit, numWorkers)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local []pairHit
			for task := range taskCh {
				local = append(local, testPair(task.pair)...)
			}
			resultsCh <- local
		}()
	}

	wg.Wait()
	close(resultsCh)

	var all []pairHit
	for local := range resultsCh {
		all = append(all, local...)
	}
	return all
}

func testPair(p leafPair) []pairHit {
	var hits []pairHit
	for _, ta := range p.a.Triangles {
		for _, tb := range p.b.Triangles {
			if ta.Intersects(tb) {
				hits = append(hits, pairHit{faceIDA: ta.FaceID, faceIDB: tb.FaceID})
			}
		}
	}
	return hits
}
