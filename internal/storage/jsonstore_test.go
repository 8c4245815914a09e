package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoad_missingFileIsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	records := Load[record](store, "ghosts")
	require.Empty(t, records)
}

func TestLoad_corruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "broken.json"),
		[]byte(`{"not":"an array"`),
		0o644,
	))

	records := Load[record](store, "broken")
	require.Empty(t, records)
}

func TestSaveLoad_roundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	want := []record{
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
	}
	require.NoError(t, Save(store, "things", want))

	got := Load[record](store, "things")
	require.Equal(t, want, got)
}

func TestSave_prettyPrintsNilAsEmptyArray(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, Save[record](store, "things", nil))

	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	require.NoError(t, Save(store, "things", []record{{ID: "1"}}))

	data, err = os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ", "collections are pretty-printed")
}

func TestEnsure_seedsEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, Save(store, "existing", []record{{ID: "keep"}}))
	require.NoError(t, store.Ensure("existing", "fresh"))

	require.Len(t, Load[record](store, "existing"), 1, "Ensure must not reset existing data")

	data, err := os.ReadFile(filepath.Join(dir, "fresh.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestMutate_serializesConcurrentAppends(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	const writers = 25
	errCh := make(chan error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			errCh <- store.Mutate("counters", func() error {
				records := Load[record](store, "counters")
				records = append(records, record{ID: strconv.Itoa(i)})

				return Save(store, "counters", records)
			})
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	require.Len(t, Load[record](store, "counters"), writers, "no append may be lost")
}
