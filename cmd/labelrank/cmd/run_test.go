package cmd

import (
	"testing"

	"github.com/katalvlaran/labelrank/labelrank"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	cases := map[string]labelrank.Schedule{
		"":           labelrank.ScheduleSequential,
		"sequential": labelrank.ScheduleSequential,
		"static":     labelrank.ScheduleStatic,
		"dynamic":    labelrank.ScheduleDynamic,
		"guided":     labelrank.ScheduleGuided,
	}
	for input, want := range cases {
		got, err := parseSchedule(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseSchedule_RejectsUnknown(t *testing.T) {
	_, err := parseSchedule("round-robin")
	require.Error(t, err)
}
