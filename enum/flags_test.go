package enum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type personaFlag int32

var personaFlags = NewFlagFamily("EPersonaStateFlag",
	Member[personaFlag]{Name: "NONE", Value: 0},
	Member[personaFlag]{Name: "HasRichPresence", Value: 1},
	Member[personaFlag]{Name: "InJoinableGame", Value: 2},
	Member[personaFlag]{Name: "Golden", Value: 4},
	Member[personaFlag]{Name: "RemotePlayTogether", Value: 8},
	Member[personaFlag]{Name: "ClientTypeWeb", Value: 256},
	Member[personaFlag]{Name: "ClientTypeMobile", Value: 512},
	Member[personaFlag]{Name: "ClientTypeTenfoot", Value: 1024},
	Member[personaFlag]{Name: "ClientTypeVR", Value: 2048},
	Member[personaFlag]{Name: "LaunchTypeGamepad", Value: 4096},
	Member[personaFlag]{Name: "LaunchTypeCompatTool", Value: 8192},
)

func names[T Integer](ms []Member[T]) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func TestDecompose(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		value    personaFlag
		expected []string
	}{
		{
			name:     "zero",
			value:    0,
			expected: []string{},
		},
		{
			name:     "rich presence and web",
			value:    257,
			expected: []string{"HasRichPresence", "ClientTypeWeb"},
		},
		{
			name:     "single",
			value:    4,
			expected: []string{"Golden"},
		},
		{
			name:     "unknown bits only",
			value:    16 | 32 | 1<<20,
			expected: []string{},
		},
		{
			name:     "unknown high bits ignored",
			value:    personaFlag(int32(-1 << 20)) | 8 | 2,
			expected: []string{"InJoinableGame", "RemotePlayTogether"},
		},
		{
			name:     "sign bit",
			value:    personaFlag(int32(-1 << 31)) | 1,
			expected: []string{"HasRichPresence"},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got := personaFlags.Decompose(testCase.value)
			require.NotNil(t, got)
			require.Equal(t, testCase.expected, names(got))
		})
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	t.Parallel()
	known := personaFlags.Decompose(-1)
	require.Len(t, known, 10)
	rng := rand.New(rand.NewSource(7))
	for x := 0; x < 200; x = x + 1 {
		var subset []Member[personaFlag]
		for _, m := range known {
			if rng.Intn(2) == 0 {
				subset = append(subset, m)
			}
		}
		shuffled := make([]Member[personaFlag], len(subset))
		copy(shuffled, subset)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		combined := personaFlags.Compose(shuffled...)
		got := personaFlags.Decompose(combined)
		if subset == nil {
			subset = []Member[personaFlag]{}
		}
		require.Equal(t, subset, got)
		for _, m := range subset {
			require.True(t, personaFlags.Has(combined, m))
		}
		require.Equal(t, personaFlag(0), personaFlags.Unknown(combined))
	}
}

func TestFlagHelpers(t *testing.T) {
	t.Parallel()
	none := personaFlags.MustLookup("NONE")
	web := personaFlags.MustLookup("ClientTypeWeb")
	require.True(t, personaFlags.Has(0, none))
	require.False(t, personaFlags.Has(1, none))
	require.True(t, personaFlags.Has(257, web))
	require.False(t, personaFlags.Has(1, web))
	require.Equal(t, personaFlag(1<<20), personaFlags.Unknown(1<<20|257))
	require.True(t, personaFlags.IsFlags())
	require.False(t, results.IsFlags())
}

func TestFlagDescribe(t *testing.T) {
	t.Parallel()
	require.Equal(t, "EPersonaStateFlag.NONE", personaFlags.Describe(0))
	require.Equal(t, "EPersonaStateFlag.ClientTypeWeb", personaFlags.Describe(256))
	require.Equal(t, "EPersonaStateFlag(HasRichPresence|ClientTypeWeb)", personaFlags.Describe(257))
	require.Equal(t, "EPersonaStateFlag(Golden|0x100000)", personaFlags.Describe(1<<20|4))

	bare := NewFlagFamily[personaFlag]("Bare", Member[personaFlag]{Name: "A", Value: 1})
	require.Equal(t, "Bare(0)", bare.Describe(0))
}

func TestFlagFamilyRejectsMultiBit(t *testing.T) {
	t.Parallel()
	_, err := BuildFlagFamily("Bad",
		Member[personaFlag]{Name: "A", Value: 1},
		Member[personaFlag]{Name: "AB", Value: 3},
	)
	require.ErrorIs(t, err, ErrInvalidFlag)
	_, err = BuildFlagFamily("Bad",
		Member[personaFlag]{Name: "Neg", Value: -2},
	)
	require.ErrorIs(t, err, ErrInvalidFlag)
	require.Panics(t, func() {
		NewFlagFamily("Bad", Member[personaFlag]{Name: "AB", Value: 3})
	})
}

func TestFlagAliases(t *testing.T) {
	t.Parallel()
	ff := NewFlagFamily("Alias",
		Member[personaFlag]{Name: "High", Value: 4},
		Member[personaFlag]{Name: "Low", Value: 1},
		Member[personaFlag]{Name: "LowAlias", Value: 1},
	)
	require.Equal(t, []string{"Low", "High"}, names(ff.Decompose(5)))
}
