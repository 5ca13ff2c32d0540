package types

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bitget-legacy/encoding/json"
)

func TestTime(t *testing.T) {
	t.Parallel()
	var testTime Time

	require.NoError(t, json.Unmarshal([]byte(`0`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`""`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`null`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	// seconds
	require.NoError(t, json.Unmarshal([]byte(`"1628736847"`), &testTime))
	assert.Equal(t, time.Unix(1628736847, 0), testTime.Time())

	// milliseconds, the spot API format
	require.NoError(t, json.Unmarshal([]byte(`"1595525139400"`), &testTime))
	assert.Equal(t, time.UnixMilli(1595525139400), testTime.Time())
	assert.Equal(t, int64(1595525139400), testTime.UnixMilli())

	require.NoError(t, json.Unmarshal([]byte(`1595604968430`), &testTime))
	assert.Equal(t, time.UnixMilli(1595604968430), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`"1726104395.56"`), &testTime))
	assert.Equal(t, time.UnixMilli(1726104395560), testTime.Time())

	// microseconds
	require.NoError(t, json.Unmarshal([]byte(`"1628736847325123"`), &testTime))
	assert.Equal(t, time.UnixMicro(1628736847325123), testTime.Time())

	// nanoseconds
	require.NoError(t, json.Unmarshal([]byte(`"1606292218213457800"`), &testTime))
	assert.Equal(t, time.Unix(0, 1606292218213457800), testTime.Time())

	// ISO-8601, the swap API format
	require.NoError(t, json.Unmarshal([]byte(`"2019-03-21T04:41:58.0Z"`), &testTime))
	assert.Equal(t, time.Date(2019, 3, 21, 4, 41, 58, 0, time.UTC), testTime.Time())

	assert.Error(t, json.Unmarshal([]byte(`"meow"`), &testTime))
	assert.Error(t, json.Unmarshal([]byte(`"123"`), &testTime))
}

func TestParseMillis(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in string
		ms int64
		ok bool
	}{
		{"1595525139400", 1595525139400, true},
		{"2020-07-24T07:06:41.287Z", 1595574401287, true},
		{"2018-08-17T07:03:42.000Z", 1534489422000, true},
		{"", 0, false},
		{"0", 0, false},
		{"yesterday", 0, false},
	} {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			ms, ok := ParseMillis(tc.in)
			assert.Equal(t, tc.ok, ok, "ok should be correct")
			assert.Equal(t, tc.ms, ms, "milliseconds should be correct")
		})
	}
}

// 4981642	       239.8 ns/op	     168 B/op	       2 allocs/op
func BenchmarkTime(b *testing.B) {
	var testTime Time
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal([]byte(`"`+strconv.Itoa(1691122380942)+`"`), &testTime); err != nil {
			b.Fatal(err)
		}
	}
}
