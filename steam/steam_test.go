package steam

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steamkit/enums/enum"
)

func TestConcreteValues(t *testing.T) {
	t.Parallel()
	require.Equal(t, EResult(1), EResultOK)
	require.Equal(t, EPersonaStateFlag(1), EPersonaStateFlagHasRichPresence)
	require.Equal(t, EPersonaStateFlag(256), EPersonaStateFlagClientTypeWeb)

	m, err := EResultFamily.Lookup("OK")
	require.NoError(t, err)
	require.Equal(t, EResultOK, m.Value)
}

func TestFamilies(t *testing.T) {
	t.Parallel()
	names := make([]string, 0)
	for _, d := range Families() {
		names = append(names, d.Name())
	}
	require.Equal(t, []string{
		"EResult",
		"EUniverse",
		"EType",
		"ETypeChar",
		"EInstanceFlag",
		"EFriendRelationship",
		"EPersonaState",
		"EPersonaStateFlag",
		"ECommunityVisibilityState",
		"ETradeOfferState",
		"EChatEntryType",
		"EUIMode",
		"EUserBadge",
	}, names)
	require.Equal(t, names, Registry().Families())
}

func TestEveryMemberRoundTrips(t *testing.T) {
	t.Parallel()
	r := Registry()
	for _, d := range Families() {
		d := d
		t.Run(d.Name(), func(t *testing.T) {
			t.Parallel()
			firstByValue := make(map[int32]string)
			for _, m := range d.Int32Members() {
				got, err := r.LookupByName(d.Name(), m.Name)
				require.NoError(t, err)
				require.Equal(t, m, got)

				if _, ok := firstByValue[m.Value]; !ok {
					firstByValue[m.Value] = m.Name
				}
				v, err := r.LookupByValue(d.Name(), m.Value)
				require.NoError(t, err)
				require.True(t, v.IsKnown())
				require.Equal(t, firstByValue[m.Value], v.String())
				require.Equal(t, m.Value, v.Raw())
			}
		})
	}
}

func TestUnknownNameFails(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		family string
		name   string
	}{
		{family: "EResult", name: "NotARealResult"},
		{family: "EResult", name: "ok"},
		{family: "EResult", name: ""},
		{family: "EPersonaStateFlag", name: "HasRichPresence "},
		{family: "ETypeChar", name: "Chat"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(fmt.Sprintf("%s.%q", testCase.family, testCase.name), func(t *testing.T) {
			t.Parallel()
			_, err := Registry().LookupByName(testCase.family, testCase.name)
			require.ErrorIs(t, err, enum.ErrUnknownMember)
		})
	}

	_, err := EResultFamily.Lookup("NotARealResult")
	require.ErrorIs(t, err, enum.ErrUnknownMember)
}

func TestUnknownValuePassesThrough(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		family string
		value  int32
	}{
		{family: "EResult", value: 4},
		{family: "EResult", value: 9999},
		{family: "EResult", value: -1},
		{family: "ETradeOfferState", value: 0},
		{family: "EUniverse", value: math.MaxInt32},
		{family: "EChatEntryType", value: math.MinInt32},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(fmt.Sprintf("%s(%d)", testCase.family, testCase.value), func(t *testing.T) {
			t.Parallel()
			v, err := Registry().LookupByValue(testCase.family, testCase.value)
			require.NoError(t, err)
			require.False(t, v.IsKnown())
			require.Equal(t, testCase.value, v.Raw())

			again, err := Registry().LookupByValue(testCase.family, v.Raw())
			require.NoError(t, err)
			require.Equal(t, v, again)
		})
	}
}

func TestTypedCoerce(t *testing.T) {
	t.Parallel()
	v := EResultFamily.Coerce(2)
	m, ok := v.Member()
	require.True(t, ok)
	require.Equal(t, EResultFail, m.Value)
	require.Equal(t, v, EResultFamily.CoerceValue(v))

	v = EResultFamily.Coerce(9999)
	require.False(t, v.IsKnown())
	require.Equal(t, EResult(9999), v.Raw())
	require.Equal(t, v, EResultFamily.Coerce(v.Raw()))

	state := ETradeOfferStateFamily.CoerceInt(3)
	require.Equal(t, "Accepted", state.String())
}

func TestAliases(t *testing.T) {
	t.Parallel()
	require.Equal(t, ETypeCharT, ETypeCharL)
	require.Equal(t, ETypeCharg, ETypeCharc)

	require.Equal(t, "T", ETypeCharFamily.Coerce(8).String())
	require.Equal(t, "g", ETypeCharFamily.Coerce(7).String())
	require.Equal(t, "T", ETypeCharL.String())

	m, err := ETypeCharFamily.Lookup("L")
	require.NoError(t, err)
	require.Equal(t, ETypeChar(8), m.Value)
}

func TestDecomposeFlags(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		family   string
		value    int32
		expected []string
	}{
		{name: "rich presence and web", family: "EPersonaStateFlag", value: 257, expected: []string{"HasRichPresence", "ClientTypeWeb"}},
		{name: "zero", family: "EPersonaStateFlag", value: 0, expected: []string{}},
		{name: "unknown bits ignored", family: "EPersonaStateFlag", value: 1<<20 | 16 | 4, expected: []string{"Golden"}},
		{name: "all launch types", family: "EPersonaStateFlag", value: 4096 | 8192, expected: []string{"LaunchTypeGamepad", "LaunchTypeCompatTool"}},
		{name: "instance", family: "EInstanceFlag", value: 0x80000 | 0x20000, expected: []string{"MMSLobby", "Clan"}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			set, err := Registry().DecomposeFlags(testCase.family, testCase.value)
			require.NoError(t, err)
			got := make([]string, 0, len(set))
			for _, m := range set {
				got = append(got, m.Name)
			}
			require.Equal(t, testCase.expected, got)
		})
	}

	_, err := Registry().DecomposeFlags("EResult", 1)
	require.ErrorIs(t, err, enum.ErrNotFlags)
}

func TestTypedDecompose(t *testing.T) {
	t.Parallel()
	set := EPersonaStateFlagFamily.Decompose(EPersonaStateFlagHasRichPresence | EPersonaStateFlagClientTypeWeb)
	require.Equal(t, []enum.Member[EPersonaStateFlag]{
		{Name: "HasRichPresence", Value: EPersonaStateFlagHasRichPresence},
		{Name: "ClientTypeWeb", Value: EPersonaStateFlagClientTypeWeb},
	}, set)
	require.Equal(t, EPersonaStateFlag(257), EPersonaStateFlagFamily.Compose(set...))
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "OK", EResultOK.String())
	require.Equal(t, "EResult(4)", EResult(4).String())
	require.Equal(t, "Offline", EPersonaStateOffline.String())
	require.Equal(t, "EPersonaStateFlag(257)", EPersonaStateFlag(257).String())
	require.Equal(t, "OK", fmt.Sprint(EResultOK))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		family   string
		value    int32
		expected string
	}{
		{family: "EResult", value: 1, expected: "EResult.OK"},
		{family: "EResult", value: 47, expected: "EResult.ContentVersion"},
		{family: "EResult", value: 4, expected: "EResult(4)"},
		{family: "EPersonaStateFlag", value: 0, expected: "EPersonaStateFlag.NONE"},
		{family: "EPersonaStateFlag", value: 257, expected: "EPersonaStateFlag(HasRichPresence|ClientTypeWeb)"},
		{family: "EPersonaStateFlag", value: 1 | 1<<20, expected: "EPersonaStateFlag(HasRichPresence|0x100000)"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.expected, func(t *testing.T) {
			t.Parallel()
			got, err := Registry().Describe(testCase.family, testCase.value)
			require.NoError(t, err)
			require.Equal(t, testCase.expected, got)
		})
	}
}

func TestRegistryIsShared(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	seen := make([]*enum.Registry, 16)
	for x := 0; x < len(seen); x = x + 1 {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			seen[x] = Registry()
			_, err := seen[x].LookupByValue("EResult", int32(x))
			assert.NoError(t, err)
		}(x)
	}
	wg.Wait()
	for _, r := range seen {
		require.Same(t, seen[0], r)
	}
}

func BenchmarkRegistryLookupByValue(b *testing.B) {
	r := Registry()
	b.ResetTimer()
	for x := 0; x < b.N; x = x + 1 {
		_, _ = r.LookupByValue("EResult", int32(x%120))
	}
}
