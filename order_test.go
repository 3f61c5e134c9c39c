package fdbtuple

import (
	"bytes"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/arloliu/fdbtuple/item"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *pebble.DB {
	t.Helper()

	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	return db
}

func scanKeys(t *testing.T, db *pebble.DB, opts *pebble.IterOptions) [][]byte {
	t.Helper()

	iter, err := db.NewIter(opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, iter.Close()) }()

	var keys [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		keys = append(keys, bytes.Clone(iter.Key()))
	}

	return keys
}

func randomTuples(r *rand.Rand, count int) []Tuple {
	tuples := make([]Tuple, 0, count)
	for range count {
		var t Tuple
		for range r.IntN(4) + 1 {
			switch r.IntN(7) {
			case 0:
				t = append(t, item.Int(r.Int64()-math.MaxInt64/2))
			case 1:
				t = append(t, item.Int(r.IntN(600)-300))
			case 2:
				b := make([]byte, r.IntN(4))
				for i := range b {
					b[i] = byte(r.IntN(3)) // lots of zero bytes
				}
				t = append(t, item.Bytes(b))
			case 3:
				t = append(t, item.String([]string{"", "a", "ab", "b", "\x00"}[r.IntN(5)]))
			case 4:
				t = append(t, item.Float64(r.NormFloat64()))
			case 5:
				t = append(t, item.Bool(r.IntN(2) == 1))
			default:
				t = append(t, item.Tuple{item.Null{}, item.Int(r.IntN(3) - 1)})
			}
		}
		tuples = append(tuples, t)
	}

	return tuples
}

func TestOrder_PebbleIteration(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tuples := randomTuples(r, 500)

	db := openMemDB(t)
	for _, tup := range tuples {
		require.NoError(t, db.Set(EncodeTuple(tup), nil, pebble.NoSync))
	}

	keys := scanKeys(t, db, nil)
	require.NotEmpty(t, keys)

	var prev Tuple
	for i, key := range keys {
		tup, err := DecodeTuple(key)
		require.NoError(t, err)
		require.Equal(t, key, EncodeTuple(tup), "canonical re-encoding of key %d", i)

		if i > 0 {
			require.Negative(t, Compare(prev, tup), "%v must sort before %v", prev, tup)
		}
		prev = tup
	}

	sorted := slices.Clone(tuples)
	slices.SortFunc(sorted, Compare)
	sorted = slices.CompactFunc(sorted, func(a, b Tuple) bool { return Compare(a, b) == 0 })
	require.Len(t, keys, len(sorted))
}

func TestOrder_PebblePrefixScan(t *testing.T) {
	db := openMemDB(t)

	// ksuids are time sortable, so events of one stream come back in id order.
	ids := make([]ksuid.KSUID, 50)
	for i := range ids {
		ids[i] = ksuid.New()
	}
	slices.SortFunc(ids, func(a, b ksuid.KSUID) int { return ksuid.Compare(a, b) })

	for i, id := range slices.Backward(ids) {
		for _, stream := range []string{"audit", "events", "events\x00", "eventz"} {
			key, err := Pack(stream, id.Bytes(), i)
			require.NoError(t, err)
			require.NoError(t, db.Set(key, id.Bytes(), pebble.NoSync))
		}
	}

	prefix := EncodeTuple(Tuple{item.String("events")})
	keys := scanKeys(t, db, &pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: append(bytes.Clone(prefix), 0xFF),
	})
	require.Len(t, keys, len(ids))

	for i, key := range keys {
		row, err := DecodeTuple3[string, []byte, int](key)
		require.NoError(t, err)
		require.Equal(t, "events", row.V0)
		require.Equal(t, ids[i].Bytes(), row.V1)
	}
}
