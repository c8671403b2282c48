package storage

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	var records []record
	require.NoError(t, fs.Load(&records))
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "records.json"))

	saved := []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, fs.Save(saved))

	var loaded []record
	require.NoError(t, fs.Load(&loaded))
	assert.Equal(t, saved, loaded)
}

func TestUpdateMutatesUnderLock(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "records.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var records []record
			err := fs.Update(&records, func() error {
				records = append(records, record{Name: "x"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var records []record
	require.NoError(t, fs.Load(&records))
	assert.Len(t, records, 20)
}

func TestUpdateErrorSkipsWrite(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, fs.Save([]record{{Name: "keep"}}))

	boom := errors.New("boom")
	var records []record
	err := fs.Update(&records, func() error {
		records = append(records, record{Name: "discard"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	var after []record
	require.NoError(t, fs.Load(&after))
	require.Len(t, after, 1)
	assert.Equal(t, "keep", after[0].Name)
}
