package lines_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bjaus/printerator/internal/lines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	t.Parallel()
	r := lines.NewReader("in", strings.NewReader("a\nb b\n\nc"), lines.Options{})
	assert.Equal(t, []any{"a", "b b", "", "c"}, slices.Collect(r.All()))
	assert.NoError(t, r.Err())
	assert.Equal(t, 4, r.Lines())
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	r := lines.NewReader("in", strings.NewReader("Hello, world\nhi\n你好世界你好\n"), lines.Options{Truncate: 8})
	assert.Equal(t, []any{"Hello...", "hi", "你好..."}, slices.Collect(r.All()))
}

func TestInts(t *testing.T) {
	t.Parallel()
	type skip struct {
		line int
		text string
	}
	var skipped []skip
	opts := lines.Options{
		Kind: lines.Int,
		OnSkip: func(line int, text string, err error) {
			assert.Error(t, err)
			skipped = append(skipped, skip{line, text})
		},
	}
	r := lines.NewReader("in", strings.NewReader("1\n two\n 3 \n-4\n"), opts)
	assert.Equal(t, []any{int64(1), int64(3), int64(-4)}, slices.Collect(r.All()))
	assert.Equal(t, []skip{{2, " two"}}, skipped)
}

func TestFloats(t *testing.T) {
	t.Parallel()
	r := lines.NewReader("in", strings.NewReader("1.5\n\n2\n"), lines.Options{Kind: lines.Float})
	assert.Equal(t, []any{1.5, 2.0}, slices.Collect(r.All()))
	assert.Equal(t, 3, r.Lines())
}

func TestUnknownKindSkipsEverything(t *testing.T) {
	t.Parallel()
	var errs []error
	opts := lines.Options{Kind: "bytes", OnSkip: func(_ int, _ string, err error) { errs = append(errs, err) }}
	r := lines.NewReader("in", strings.NewReader("a\nb\n"), opts)
	assert.Empty(t, slices.Collect(r.All()))
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], lines.ErrUnsupportedKind)
}

func TestReadError(t *testing.T) {
	t.Parallel()
	errRead := errors.New("disk gone")
	r := lines.NewReader("in.txt", &errReader{data: "a\nb", err: errRead}, lines.Options{})
	assert.Equal(t, []any{"a", "b"}, slices.Collect(r.All()))
	require.ErrorIs(t, r.Err(), errRead)
	assert.Contains(t, r.Err().Error(), "in.txt")
}

func TestEarlyStop(t *testing.T) {
	t.Parallel()
	r := lines.NewReader("in", strings.NewReader("a\nb\nc\n"), lines.Options{})
	for v := range r.All() {
		assert.Equal(t, "a", v)
		break
	}
	assert.Equal(t, 1, r.Lines())
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	for _, k := range lines.Kinds() {
		got, err := lines.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := lines.ParseKind("bool")
	assert.ErrorIs(t, err, lines.ErrUnsupportedKind)
}

func TestConcat(t *testing.T) {
	t.Parallel()
	seq := lines.Concat(slices.Values([]int{1, 2}), slices.Values([]int(nil)), slices.Values([]int{3}))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))

	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

// errReader returns data together with err instead of io.EOF.
type errReader struct {
	data string
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, r.err
}
