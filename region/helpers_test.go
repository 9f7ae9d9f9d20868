package region

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestTable builds a table from a compact layout description.
// Each entry is "<owner>:<len>" where owner "-" means free, e.g.
//
//	newTestTable(t, "A:200", "-:100", "B:700")
//
// The capacity is the sum of the lengths. The layout is installed as-is, so it
// may deliberately contain adjacent free regions.
func newTestTable(t testing.TB, layout ...string) *Table {
	t.Helper()

	var regions []Region
	var next Address
	for _, entry := range layout {
		owner, size, ok := strings.Cut(entry, ":")
		require.True(t, ok, "bad layout entry %q", entry)
		n, err := strconv.ParseInt(size, 10, 64)
		require.NoError(t, err)
		require.Positive(t, n)

		o := Free()
		if owner != "-" {
			o = OwnedBy(ProcessID(owner))
		}
		regions = append(regions, Region{Owner: o, Start: next, End: next + n - 1})
		next += n
	}

	return &Table{capacity: next, regions: regions}
}

// mustNew creates an empty table or fails the test.
func mustNew(t testing.TB, capacity Address) *Table {
	t.Helper()
	tbl, err := New(capacity)
	require.NoError(t, err)
	return tbl
}

// assertInvariants fails the test if the table layout is inconsistent.
func assertInvariants(t testing.TB, tbl *Table) {
	t.Helper()
	require.NoError(t, tbl.Verify())
}

// layoutOf renders the table as a list of status lines for compact assertions.
func layoutOf(tbl *Table) []string {
	out := make([]string, 0, tbl.Len())
	for _, r := range tbl.Regions() {
		out = append(out, r.String())
	}
	return out
}

// freeBytes returns the total size of free regions.
func freeBytes(tbl *Table) Address {
	return tbl.Stats().FreeBytes
}
