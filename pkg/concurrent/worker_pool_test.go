package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolCollectsEveryResult(t *testing.T) {
	pool := NewWorkerPool[int, int](4, 16)
	pool.Start(func(job int) int {
		return job * job
	})

	for i := 0; i < 16; i++ {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	results := make([]int, 0, 16)
	for r := range pool.CollectResults() {
		results = append(results, r)
	}
	require.Len(t, results, 16)

	sort.Ints(results)
	for i := 0; i < 16; i++ {
		assert.Equal(t, i*i, results[i])
	}
}

func TestWorkerPoolSingleWorker(t *testing.T) {
	pool := NewWorkerPool[string, string](1, 2)
	pool.Start(func(job string) string {
		return job + "!"
	})

	pool.AddJob("a")
	pool.AddJob("b")
	pool.Close()
	pool.Wait()

	results := make([]string, 0, 2)
	for r := range pool.CollectResults() {
		results = append(results, r)
	}
	sort.Strings(results)
	assert.Equal(t, []string{"a!", "b!"}, results)
}
