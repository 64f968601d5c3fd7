package paging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabsearch/internal/search"
)

// fakeDisplay records what the renderer paints
type fakeDisplay struct {
	rows     []string
	replaces int
	appends  int
	shown    int
	total    int
}

func (d *fakeDisplay) ReplaceRows(rows []string) {
	d.rows = append([]string(nil), rows...)
	d.replaces++
}

func (d *fakeDisplay) AppendRows(rows []string) {
	d.rows = append(d.rows, rows...)
	d.appends++
}

func (d *fakeDisplay) SetProgress(shown, total int) {
	d.shown, d.total = shown, total
}

func matchList(prefix string, n int) search.MatchList {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return search.NewMatchList(prefix, rows)
}

// scrollToSentinel makes only the armed row visible
func scrollToSentinel(t *testing.T, r *Renderer) bool {
	t.Helper()
	row, ok := r.Sentinel()
	require.True(t, ok, "sentinel should be armed")
	return r.Visible(row, row)
}

func TestSmallListIsCompleteAfterFirstPage(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d)
	r.Reset(matchList("a", 3))

	assert.Equal(t, Complete, r.State())
	assert.Equal(t, []string{"a0", "a1", "a2"}, d.rows)
	assert.Equal(t, 3, d.shown)
	assert.Equal(t, 3, d.total)
	_, armed := r.Sentinel()
	assert.False(t, armed)
}

func TestEmptyListClearsDisplay(t *testing.T) {
	d := &fakeDisplay{rows: []string{"old"}}
	r := NewRenderer(d)
	r.Reset(search.MatchList{})

	assert.Empty(t, d.rows)
	assert.Equal(t, Complete, r.State())
	assert.Equal(t, 0, d.total)
}

func TestPaginationCompletenessAndNonOverlap(t *testing.T) {
	for _, m := range []int{1, 499, 500, 501, 1000, 1234, 2500} {
		t.Run(fmt.Sprint(m), func(t *testing.T) {
			d := &fakeDisplay{}
			r := NewRenderer(d)
			r.Reset(matchList("w", m))

			pages := 1
			lastPage := min(m, PageSize)
			for r.State() == MorePending {
				before := len(d.rows)
				require.True(t, scrollToSentinel(t, r))
				lastPage = len(d.rows) - before
				pages++
			}

			assert.Equal(t, (m+PageSize-1)/PageSize, pages)
			want := m % PageSize
			if want == 0 {
				want = PageSize
			}
			assert.Equal(t, want, lastPage)
			assert.Equal(t, 1, d.replaces)
			assert.Equal(t, pages-1, d.appends)

			require.Len(t, d.rows, m)
			for i, row := range d.rows {
				assert.Equal(t, fmt.Sprintf("w%d", i), row)
			}
			_, armed := r.Sentinel()
			assert.False(t, armed, "no watch after the last page")
			assert.Equal(t, m, d.shown)
		})
	}
}

func TestSentinelIsLastRenderedRow(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d)
	r.Reset(matchList("w", 1200))

	row, ok := r.Sentinel()
	require.True(t, ok)
	assert.Equal(t, PageSize-1, row)

	// rows above the sentinel do not trigger a page
	assert.False(t, r.Visible(0, row-1))
	assert.Equal(t, PageSize, r.Shown())

	assert.True(t, r.Visible(row-10, row+3))
	row, ok = r.Sentinel()
	require.True(t, ok)
	assert.Equal(t, 2*PageSize-1, row)
	assert.Equal(t, 1000, d.shown)
}

func TestSentinelFiresOnce(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d)
	r.Reset(matchList("w", 600))

	assert.True(t, r.Visible(499, 499))
	assert.False(t, r.Visible(499, 499))
	assert.Len(t, d.rows, 600)
}

func TestResetDiscardsPendingWatch(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d)
	r.Reset(matchList("old", 1500))
	require.Equal(t, MorePending, r.State())

	r.Reset(matchList("new", 20))

	assert.Equal(t, Complete, r.State())
	assert.Equal(t, 20, r.Total())
	assert.Equal(t, r.Total(), r.Shown())
	assert.False(t, r.Visible(0, 10000), "old watch must not fire")
	require.Len(t, d.rows, 20)
	assert.Equal(t, "new0", d.rows[0])
	assert.Equal(t, 2, d.replaces)
	assert.Equal(t, 0, d.appends)
}

func TestResetRestartsFromZero(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d)
	r.Reset(matchList("old", 1500))
	require.True(t, scrollToSentinel(t, r))
	require.Equal(t, 1000, r.Shown())

	r.Reset(matchList("new", 1500))

	assert.Equal(t, PageSize, r.Shown())
	assert.Equal(t, 1500, r.Total())
	require.Len(t, d.rows, PageSize)
	assert.Equal(t, "new0", d.rows[0])
	assert.Equal(t, "new499", d.rows[PageSize-1])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "page-rendered-more-pending", MorePending.String())
	assert.Equal(t, "page-rendered-complete", Complete.String())
}
