package enum

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(results, personaFlags, typeChars)
	require.NoError(t, err)
	return r
}

func TestRegistryLookupByName(t *testing.T) {
	t.Parallel()
	r := testRegistry(t)
	require.Equal(t, []string{"EResult", "EPersonaStateFlag", "ETypeChar"}, r.Families())

	m, err := r.LookupByName("EResult", "OK")
	require.NoError(t, err)
	require.Equal(t, Member[int32]{Name: "OK", Value: 1}, m)

	_, err = r.LookupByName("EResult", "Missing")
	require.ErrorIs(t, err, ErrUnknownMember)

	_, err = r.LookupByName("EMissing", "OK")
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRegistryLookupByValue(t *testing.T) {
	t.Parallel()
	r := testRegistry(t)

	v, err := r.LookupByValue("EResult", 1)
	require.NoError(t, err)
	require.Equal(t, "OK", v.String())

	v, err = r.LookupByValue("EResult", 9001)
	require.NoError(t, err)
	require.False(t, v.IsKnown())
	require.Equal(t, int32(9001), v.Raw())

	_, err = r.LookupByValue("EMissing", 1)
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRegistryDecomposeFlags(t *testing.T) {
	t.Parallel()
	r := testRegistry(t)

	got, err := r.DecomposeFlags("EPersonaStateFlag", 257)
	require.NoError(t, err)
	require.Equal(t, []Member[int32]{
		{Name: "HasRichPresence", Value: 1},
		{Name: "ClientTypeWeb", Value: 256},
	}, got)

	got, err = r.DecomposeFlags("EPersonaStateFlag", 0)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = r.DecomposeFlags("EResult", 1)
	require.ErrorIs(t, err, ErrNotFlags)
	_, err = r.DecomposeFlags("EMissing", 1)
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRegistryDescribe(t *testing.T) {
	t.Parallel()
	r := testRegistry(t)
	testCases := []struct {
		family   string
		value    int32
		expected string
	}{
		{family: "EResult", value: 1, expected: "EResult.OK"},
		{family: "EResult", value: 9001, expected: "EResult(9001)"},
		{family: "EPersonaStateFlag", value: 257, expected: "EPersonaStateFlag(HasRichPresence|ClientTypeWeb)"},
	}
	for _, testCase := range testCases {
		got, err := r.Describe(testCase.family, testCase.value)
		require.NoError(t, err)
		require.Equal(t, testCase.expected, got)
	}
	_, err := r.Describe("EMissing", 0)
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRegistryDuplicateFamily(t *testing.T) {
	t.Parallel()
	_, err := NewRegistry(results, results)
	require.ErrorIs(t, err, ErrDuplicate)
	require.Panics(t, func() { MustRegistry(results, results) })
}

func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()
	r := testRegistry(t)
	wg := &sync.WaitGroup{}
	for x := 0; x < 16; x = x + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := int32(0); y < 64; y = y + 1 {
				v, err := r.LookupByValue("EResult", y)
				assert.NoError(t, err)
				assert.Equal(t, y, v.Raw())
				_, err = r.DecomposeFlags("EPersonaStateFlag", y)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
