package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "flag with separate value",
			args:         []string{"-s", "http://jobs.local", "-l", "debug"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "http://jobs.local"},
		},
		{
			name:         "flag with equals",
			args:         []string{"--config=alt.yaml", "-s", "x"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.yaml"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "--config=alt.json"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "--config=alt.json"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-b", "file", "-b", "redis"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b", "file", "-b", "redis"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/jobboard.yaml", ConfigFile([]string{"-c", "/etc/jobboard.yaml"}))
	assert.Equal(t, "/tmp/c.json", ConfigFile([]string{"-s", "x", "-config", "/tmp/c.json"}))
	assert.Equal(t, "/tmp/eq.json", ConfigFile([]string{"--config=/tmp/eq.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
	assert.Equal(t, "/2.json", ConfigFile([]string{"-c", "/1.json", "-config", "/2.json"}))
}
