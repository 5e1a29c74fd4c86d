package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompound(t *testing.T) {
	tests := []struct {
		arg  string
		want Compound
	}{
		{"SOFT", CompoundSoft},
		{"soft", CompoundSoft},
		{" s ", CompoundSoft},
		{"Medium", CompoundMedium},
		{"HARD", CompoundHard},
		{"inter", CompoundIntermediate},
		{"W", CompoundWet},
		{"", CompoundUnknown},
		{"qualifying", CompoundUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCompound(tt.arg), "arg=%q", tt.arg)
	}
}

func TestLoadStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "loading_basic", StatusLoadingBasic.String())
	assert.Equal(t, "loading_laps", StatusLoadingLaps.String())
	assert.Equal(t, "loading_telemetry", StatusLoadingTelemetry.String())
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "error", StatusError.String())
}
