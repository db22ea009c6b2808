package dice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 200; i++ {
		value := roller.Roll(3)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 3)
	}
}

func TestRollIsDeterministicWithSeed(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(20), b.Roll(20))
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	roller := New(nil)

	for i := 0; i < 50; i++ {
		assert.LessOrEqual(t, roller.Roll(0), 6)
	}
}

func TestRollFromManyGoroutines(t *testing.T) {
	roller := New(&Config{Seed: 3})

	const workers = 8
	results := make([][]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				results[w] = append(results[w], roller.Roll(4))
			}
		}(w)
	}
	wg.Wait()

	for _, rolls := range results {
		assert.Len(t, rolls, 100)
		for _, value := range rolls {
			assert.GreaterOrEqual(t, value, 1)
			assert.LessOrEqual(t, value, 4)
		}
	}
}
