package labelrank_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/labelrank"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := labelrank.DefaultOptions()
	require.NoError(t, opts.Validate())
}

func TestValidate_RejectsBadRepeat(t *testing.T) {
	opts := labelrank.DefaultOptions()
	opts.Repeat = 0
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidRepeat)
}

func TestValidate_RejectsNegativeMaxIterations(t *testing.T) {
	opts := labelrank.DefaultOptions()
	opts.MaxIterations = -1
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidMaxIterations)
}

func TestValidate_RejectsNonPositiveInflation(t *testing.T) {
	opts := labelrank.DefaultOptions()
	opts.Inflation = 0
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidInflation)
}

func TestValidate_RejectsConditionalUpdateOutOfRange(t *testing.T) {
	opts := labelrank.DefaultOptions()
	opts.ConditionalUpdate = 1.5
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidConditionalUpdate)
}

func TestValidate_ParallelRequiresChunkSizeAndWorkers(t *testing.T) {
	opts := labelrank.DefaultOptions()
	opts.Schedule = labelrank.ScheduleStatic
	opts.ChunkSize = 0
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidChunkSize)

	opts.ChunkSize = 8
	opts.Workers = 0
	require.ErrorIs(t, opts.Validate(), labelrank.ErrInvalidWorkers)
}

func TestSchedule_String(t *testing.T) {
	require.Equal(t, "sequential", labelrank.ScheduleSequential.String())
	require.Equal(t, "static", labelrank.ScheduleStatic.String())
	require.Equal(t, "dynamic", labelrank.ScheduleDynamic.String())
	require.Equal(t, "guided", labelrank.ScheduleGuided.String())
}
