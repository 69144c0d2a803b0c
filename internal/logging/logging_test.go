package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		Setup(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("Setup(%d): global level = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestGetLogger(t *testing.T) {
	Setup(0)
	log := GetLogger("rewrite")
	// Must be usable without panicking even below the global level.
	log.Debug().Str("path", "app.ts").Msg("updated")
}
