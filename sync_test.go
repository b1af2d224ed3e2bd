package domaintree

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTree(t *testing.T) {
	st := NewSync(nil)
	require.NoError(t, st.InsertAll(".hop.io", "api.hop.io"))
	assert.Error(t, st.Insert("a..b"))

	match, found, err := st.Lookup("other.hop.io")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ".hop.io", match)
	assert.True(t, st.Contains("api.hop.io"))
	assert.False(t, st.Contains("hop.io"))
	assert.Equal(t, 2, st.Len())

	snapshot := st.Snapshot()
	sort.Strings(snapshot)
	assert.Equal(t, []string{".hop.io", "api.hop.io"}, snapshot)
}

func TestSyncTreeConcurrentAccess(t *testing.T) {
	st := NewSync(&Opts{MatchApex: true})
	require.NoError(t, st.Insert(".example.com"))

	var wg sync.WaitGroup

	// writer
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			assert.NoError(t, st.Insert(fmt.Sprintf("host%d.example.com", i)))
		}
	}()

	// readers
	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				match, found, err := st.Lookup(fmt.Sprintf("host%d.example.com", i))
				assert.NoError(t, err)
				assert.True(t, found)
				assert.Contains(t, []string{".example.com", fmt.Sprintf("host%d.example.com", i)}, match)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 1001, st.Len())
}
