package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	c := NewCounters()
	assert.Equal(t, int64(0), c.Get("missing"))

	c.Add("b", 2)
	c.Add("a", 1)
	c.Add("b", 3)

	assert.Equal(t, int64(5), c.Get("b"))
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, map[string]int64{"a": 1, "b": 5}, c.Snapshot())
}

func TestCountersConcurrent(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add("hits", 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8000), c.Get("hits"))
}
