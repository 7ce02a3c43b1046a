package elm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mergeModel struct {
	Count int
	Name  string
	Tags  []string
	Inner innerModel

	hidden int
}

type innerModel struct {
	A int
	B int
}

func TestMergeInto(t *testing.T) {
	type tc struct {
		dst     mergeModel
		partial mergeModel
		want    mergeModel
	}

	tests := map[string]tc{
		"overwrites non-zero fields": {
			dst:     mergeModel{Count: 1, Name: "a"},
			partial: mergeModel{Count: 2},
			want:    mergeModel{Count: 2, Name: "a"},
		},
		"zero fields leave dst untouched": {
			dst:     mergeModel{Count: 1, Name: "a", Tags: []string{"x"}},
			partial: mergeModel{Name: "b"},
			want:    mergeModel{Count: 1, Name: "b", Tags: []string{"x"}},
		},
		"struct fields are replaced whole, not deep-merged": {
			dst:     mergeModel{Inner: innerModel{A: 1, B: 2}},
			partial: mergeModel{Inner: innerModel{A: 3}},
			want:    mergeModel{Inner: innerModel{A: 3}},
		},
		"slice fields are replaced": {
			dst:     mergeModel{Tags: []string{"x", "y"}},
			partial: mergeModel{Tags: []string{"z"}},
			want:    mergeModel{Tags: []string{"z"}},
		},
		"unexported fields never merge": {
			dst:     mergeModel{Count: 1, hidden: 7},
			partial: mergeModel{hidden: 9},
			want:    mergeModel{Count: 1, hidden: 7},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dst := tt.dst
			partial := tt.partial
			mergeInto(&dst, &partial)
			require.Equal(t, tt.want, dst)
		})
	}
}

func TestIsZeroPartial(t *testing.T) {
	type tc struct {
		partial mergeModel
		want    bool
	}

	tests := map[string]tc{
		"zero value is empty": {
			partial: mergeModel{},
			want:    true,
		},
		"set field is not empty": {
			partial: mergeModel{Count: 1},
			want:    false,
		},
		"only unexported fields set is still empty": {
			partial: mergeModel{hidden: 3},
			want:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			partial := tt.partial
			require.Equal(t, tt.want, isZeroPartial(&partial))
		})
	}
}

func TestCloneModel(t *testing.T) {
	m := &mergeModel{Count: 1, Name: "a"}
	c := cloneModel(m)

	require.NotSame(t, m, c)
	require.Equal(t, *m, *c)

	// Mutating the clone must not touch the original.
	c.Count = 2
	require.Equal(t, 1, m.Count)
}

func TestValidateModelType(t *testing.T) {
	require.NoError(t, validateModelType[mergeModel]())
	require.Error(t, validateModelType[int]())
	require.Error(t, validateModelType[[]string]())
}
