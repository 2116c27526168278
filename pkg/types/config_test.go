package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "default config is valid",
			config: DefaultConfig(),
		},
		{
			name:   "active policy with yaml output",
			config: Config{StreakPolicy: StreakActive, Format: FormatYAML},
		},
		{
			name:    "empty policy returns ErrStreakPolicyUnknown",
			config:  Config{StreakPolicy: "", Format: FormatText},
			wantErr: ErrStreakPolicyUnknown,
		},
		{
			name:    "unknown policy returns ErrStreakPolicyUnknown",
			config:  Config{StreakPolicy: "weekly", Format: FormatText},
			wantErr: ErrStreakPolicyUnknown,
		},
		{
			name:    "unknown format returns ErrFormatUnknown",
			config:  Config{StreakPolicy: StreakLastLogged, Format: "xml"},
			wantErr: ErrFormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
