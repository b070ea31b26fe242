package output

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_EvictsOldestFirst(t *testing.T) {
	tr := NewTranscript(3)

	for i := 1; i <= 5; i++ {
		tr.Append(fmt.Sprintf("line %d", i))
	}

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, tr.Lines())
}

func TestTranscript_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultTranscriptLines, NewTranscript(0).Capacity())
	assert.Equal(t, DefaultTranscriptLines, NewTranscript(-4).Capacity())
}

func TestTranscript_Tail(t *testing.T) {
	tr := NewTranscript(10)
	tr.Append("a")
	tr.Append("b")
	tr.Append("c")

	assert.Equal(t, []string{"b", "c"}, tr.Tail(2))
	assert.Equal(t, []string{"a", "b", "c"}, tr.Tail(0))
	assert.Equal(t, []string{"a", "b", "c"}, tr.Tail(99))
}

func TestTranscript_Clear(t *testing.T) {
	tr := NewTranscript(2)
	tr.Append("a")
	tr.Clear()
	tr.Clear()

	assert.Equal(t, 0, tr.Len())
	tr.Append("b")
	assert.Equal(t, []string{"b"}, tr.Lines())
}

func TestTranscript_ConcurrentAppend(t *testing.T) {
	tr := NewTranscript(50)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tr.Append(fmt.Sprintf("%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, tr.Len())
}
