package printerator

import (
	"bytes"
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errInternalWrite = errors.New("write failed")

func TestGoSyntax(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"%v":    "%#v",
		"%+v":   "%#+v",
		"%8.2v": "%#8.2v",
		"%#v":   "%#v",
		"%-#5v": "%-#5v",
		"%d":    "%d",
		"%.1f":  "%.1f",
		"%q":    "%q",
		"v":     "v",
		"":      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, goSyntax(in), in)
	}
}

func TestItemDirective(t *testing.T) {
	t.Parallel()
	d, err := FlavorDisplay.itemDirective("%v")
	require.NoError(t, err)
	assert.Equal(t, "%v", d)

	d, err = FlavorDebug.itemDirective("%v")
	require.NoError(t, err)
	assert.Equal(t, "%#v", d)

	_, err = Flavor("").itemDirective("%v")
	assert.ErrorIs(t, err, ErrUnsupportedFlavor)
}

type hexID uint16

func (h hexID) GoString() string { return "hexID(0x" + strconv.FormatUint(uint64(h), 16) + ")" }

func TestGoSyntaxItem(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"string", "a", true},
		{"int", -1, true},
		{"rune", 'x', true},
		{"struct", struct{ A int }{1}, true},
		{"slice", []string{"a"}, true},
		{"nil", nil, true},
		{"uint", uint(1), false},
		{"byte", byte('a'), false},
		{"uint32", uint32(0xdeadc0de), false},
		{"uintptr", uintptr(8), false},
		{"float32", float32(0.5), false},
		{"float64", 2.0, false},
		{"complex", complex(1, 2), false},
		{"uint with GoString", hexID(255), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goSyntaxItem(tt.v))
		})
	}
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cw := &countingWriter{w: &buf}
	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("de"))
	assert.Equal(t, int64(5), cw.n)
}

func TestCountingWriterError(t *testing.T) {
	t.Parallel()
	cw := &countingWriter{w: &errWriterInternal{}}
	_, err := cw.Write([]byte("abc"))
	assert.ErrorIs(t, err, errInternalWrite)
	assert.Zero(t, cw.n)
}

func TestPullStartsLazily(t *testing.T) {
	t.Parallel()
	p := New(slices.Values([]int{1, 2}), FlavorDisplay, nil)
	assert.Nil(t, p.next)
	assert.NotNil(t, p.seq)

	p.mu.Lock()
	next := p.pull()
	v, ok := next()
	p.release()
	p.mu.Unlock()

	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Nil(t, p.seq)
	assert.Nil(t, p.next)
	assert.Nil(t, p.stop)
}

func TestReleaseTwice(t *testing.T) {
	t.Parallel()
	p := New(slices.Values([]int{1}), FlavorDisplay, nil)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pull()
	p.release()
	p.release()
	_, ok := p.pull()()
	assert.False(t, ok)
}

func TestNewFillsDefaults(t *testing.T) {
	t.Parallel()
	p := New(slices.Values([]int{}), FlavorDebug, &Options{Pretty: true})
	assert.Equal(t, Options{Pretty: true, Indent: defaultIndent, Item: ItemFmt}, p.opts)
}

func TestNewCopiesOptions(t *testing.T) {
	t.Parallel()
	opts := &Options{Pretty: true}
	p := New(slices.Values([]int{}), FlavorDisplay, opts)
	opts.Pretty = false
	assert.True(t, p.opts.Pretty)
}

func TestSetFlow(t *testing.T) {
	t.Parallel()
	var node yaml.Node
	require.NoError(t, node.Encode(map[string][]int{"a": {1, 2}}))
	setFlow(&node)
	assert.NotZero(t, node.Style&yaml.FlowStyle)
	require.Len(t, node.Content, 2)
	assert.Zero(t, node.Content[0].Style&yaml.FlowStyle)
	assert.NotZero(t, node.Content[1].Style&yaml.FlowStyle)
}

func TestMarshalFlowScalar(t *testing.T) {
	t.Parallel()
	data, err := marshalFlow("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain\n", string(data))
}

func TestWriteJSONItemWriteError(t *testing.T) {
	t.Parallel()
	err := writeJSONItem(&errWriterInternal{}, 1)
	assert.ErrorIs(t, err, errInternalWrite)
	assert.NotErrorIs(t, err, ErrItem)
}

func TestWriteYAMLItemWriteError(t *testing.T) {
	t.Parallel()
	err := writeYAMLItem(&errWriterInternal{}, 1)
	assert.ErrorIs(t, err, errInternalWrite)
	assert.NotErrorIs(t, err, ErrItem)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
