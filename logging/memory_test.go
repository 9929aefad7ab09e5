package logging

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	data := []string{"first", "second", "third"}
	testdata := []struct {
		name     string
		size     int
		reverse  bool
		expected []string
	}{
		{"forward", 10, false, []string{"first", "second", "third"}},
		{"reverse", 10, true, []string{"third", "second", "first"}},
		{"wrapped forward", 2, false, []string{"second", "third"}},
		{"wrapped reverse", 2, true, []string{"third", "second"}},
		{"exact fit", 3, false, []string{"first", "second", "third"}},
		{"single line", 1, true, []string{"third"}},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			m := NewMemoryLogger(d.size).(*memoryLogs)
			for i, s := range data {
				_, err := m.Write([]byte(s))
				require.NoError(t, err, "write #%d", i)
			}
			var c collector
			require.NoError(t, m.Export(&c, d.reverse))
			assert.Equal(t, d.expected, []string(c))
			assert.Equal(t, len(d.expected), m.Len())
		})
	}
}

func TestExportEmpty(t *testing.T) {
	m := NewMemoryLogger(4).(*memoryLogs)
	var c collector
	require.NoError(t, m.Export(&c, false))
	assert.Empty(t, c)
}

func TestWriteCopiesBuffer(t *testing.T) {
	m := NewMemoryLogger(4).(*memoryLogs)
	buf := []byte("abc")
	m.Write(buf)
	buf[0] = 'x'
	var c collector
	require.NoError(t, m.Export(&c, false))
	assert.Equal(t, []string{"abc"}, []string(c))
}

func TestExportWriterError(t *testing.T) {
	m := NewMemoryLogger(4).(*memoryLogs)
	m.Write([]byte("line"))
	err := m.Export(failingWriter{}, false)
	assert.Error(t, err)
}

func TestConcurrentWrites(t *testing.T) {
	m := NewMemoryLogger(50).(*memoryLogs)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.Write([]byte(fmt.Sprintf("%d-%d", g, i)))
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
}

type collector []string

func (c *collector) Write(data []byte) (int, error) {
	*c = append(*c, string(data))
	return len(data), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
