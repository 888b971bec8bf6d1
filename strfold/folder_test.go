package strfold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"github.com/viant/traversal"
	"github.com/viant/traversal/collection"
	"github.com/viant/traversal/conv"
)

// stopAfter folds elements and stops once limit tokens were appended
type stopAfter[E any] struct {
	*Folder[E]
	limit int
}

func (s *stopAfter[E]) Visit(element E) (traversal.Signal, error) {
	if _, err := s.Folder.Visit(element); err != nil {
		return traversal.Continue, err
	}
	if s.Len() >= s.limit {
		return traversal.Stop, nil
	}
	return traversal.Continue, nil
}

// dropEven removes even numbers and folds the odd ones
type dropEven struct {
	*Folder[int]
}

func (d dropEven) Visit(element int) (traversal.Signal, error) {
	if element%2 == 0 {
		return traversal.Remove, nil
	}
	return d.Folder.Visit(element)
}

func TestFolder_Fold(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		opts     []Option
		expected string
	}{
		{name: "wrapped", values: []int{1, 2, 3}, opts: []Option{WithInitial("("), WithClosing(")"), WithSeparator(", ")}, expected: "(1, 2, 3)"},
		{name: "empty wrapped", values: []int{}, opts: []Option{WithWrap("(", ")"), WithSeparator(", ")}, expected: "()"},
		{name: "no options", values: []int{1, 2, 3}, expected: "123"},
		{name: "single", values: []int{7}, opts: []Option{WithSeparator("|")}, expected: "7"},
		{name: "initial only", values: []int{4, 5}, opts: []Option{WithInitial("n:"), WithSeparator(",")}, expected: "n:4,5"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Join(tc.values, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFolder_Result(t *testing.T) {
	folder := New[string](WithInitial("["), WithClosing("]"), WithSeparator(" "))
	assert.Equal(t, "[]", folder.Result())
	assert.Equal(t, 0, folder.Len())

	_, err := folder.Visit("a")
	require.NoError(t, err)
	_, err = folder.Visit("b")
	require.NoError(t, err)
	assert.Equal(t, "[a b]", folder.Result())
	assert.Equal(t, "[a b]", folder.Result())
	assert.Equal(t, 2, folder.Len())
}

func TestFolder_StopEarly(t *testing.T) {
	visitor := &stopAfter[int]{Folder: New[int](), limit: 2}
	actual, err := FoldSlice[int]([]int{1, 2, 3}, visitor)
	require.NoError(t, err)
	assert.Equal(t, "12", actual)

	strict := &stopAfter[int]{Folder: New[int](WithSeparator("-")), limit: 2}
	result, outcome, err := traversal.Fold[int, string](traversal.Strict, collection.ArrayOf([]int{1, 2, 3}), strict)
	require.NoError(t, err)
	assert.Equal(t, traversal.StoppedEarly, outcome)
	assert.Equal(t, "1-2", result)
}

func TestFolder_Remove(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	actual, err := Fold[int](collection.SliceOf(&values), dropEven{New[int](WithSeparator(","))})
	require.NoError(t, err)
	assert.Equal(t, "1,3,5", actual)
	assert.Equal(t, []int{1, 3, 5}, values)

	_, err = FoldSlice[int]([]int{1, 2, 3}, dropEven{New[int]()})
	assert.ErrorIs(t, err, traversal.ErrRemoveUnsupported)
}

func TestFolder_ConversionError(t *testing.T) {
	type point struct{ X int }
	folder := New[any](WithSeparator(","))
	actual, err := FoldSlice[any]([]any{1, point{X: 1}, 3}, folder)
	assert.ErrorContains(t, err, "cannot convert")
	assert.Equal(t, "1", actual)
	assert.Equal(t, 1, folder.Len())
}

func TestFolder_WithFormat(t *testing.T) {
	failure := errors.New("rejected")
	format := func(element interface{}) (string, error) {
		if element.(int) < 0 {
			return "", failure
		}
		return "#" + string(rune('0'+element.(int))), nil
	}
	actual, err := Join([]int{1, 2}, WithFormat(format), WithSeparator(" "))
	require.NoError(t, err)
	assert.Equal(t, "#1 #2", actual)

	_, err = Join([]int{1, -1}, WithFormat(format))
	assert.Same(t, failure, err)
}

func TestFolder_WithCaseFormat(t *testing.T) {
	actual, err := Join([]string{"UserName", "FirstName"}, WithCaseFormat(text.CaseFormatLowerUnderscore), WithSeparator(","))
	require.NoError(t, err)
	assert.Equal(t, "user_name,first_name", actual)
}

func TestFold_Collections(t *testing.T) {
	fields, err := collection.FieldsOf(struct {
		ID   int
		Name string
	}{ID: 1, Name: "abc"})
	require.NoError(t, err)
	actual, err := Fold[collection.Field](fields, New[collection.Field](WithWrap("{", "}"), WithSeparator(", ")))
	require.NoError(t, err)
	assert.Equal(t, "{ID=1, Name=abc}", actual)

	entries := collection.SortedMapOf(map[string]int{"b": 2, "a": 1}, func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	actual, err = Fold[collection.Entry[string, int]](entries, New[collection.Entry[string, int]](WithSeparator("&")))
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", actual)
}

func TestFolder_WithConverter(t *testing.T) {
	converter := conv.NewConverter(conv.Options{NilText: "null"})
	actual, err := Join([]any{nil, 1, "a"}, WithConverter(converter), WithSeparator(","))
	require.NoError(t, err)
	assert.Equal(t, "null,1,a", actual)
}
