package sbc

import "sync"

// DefaultWorkers is the worker count used when a caller asks for fewer.
const DefaultWorkers = 1

// task splits [0, size) into one contiguous chunk per worker and runs fn on
// each chunk in its own goroutine. Chunks let callers keep per-worker buffers.
func task(workersCount, size int, fn func(start, end int)) {
	workersCount = max(DefaultWorkers, workersCount)

	var wg sync.WaitGroup
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, size)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
