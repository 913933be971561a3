package sources_test

import (
	"context"
	"testing"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/sources"
	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSource(t *testing.T) {
	rows := []statistics.Row{
		{option.Some(statistics.Number(1))},
		{option.None[statistics.Cell]()},
	}
	s := sources.NewSliceSource("t", []string{"a"}, rows...)

	cols, err := s.Columns(context.Background())
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "a", cols[0].Name)

	var got []statistics.Row
	for row, err := range s.Rows(context.Background()) {
		require.NoError(t, err)
		got = append(got, row)
	}
	assert.Equal(t, rows, got)
	assert.Equal(t, "t", s.Table())
	assert.Equal(t, "memory", s.Name())
}

func TestSliceSourceCancelled(t *testing.T) {
	s := sources.NewSliceSource("t", []string{"a"}, statistics.Row{option.None[statistics.Cell]()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for row, err := range s.Rows(ctx) {
		assert.Nil(t, row)
		assert.ErrorIs(t, err, context.Canceled)
	}
}
