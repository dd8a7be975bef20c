package flagx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		boolFlags  []string
		want       []string
	}{
		{
			name:       "value flag with separate value",
			args:       []string{"-c", "conf.json", "-a", "http://localhost:8080"},
			valueFlags: []string{"-c", "-config"},
			want:       []string{"-c", "conf.json"},
		},
		{
			name:       "value flag with equals",
			args:       []string{"-config=alt.json", "-a", "http://api"},
			valueFlags: []string{"-c", "-config"},
			want:       []string{"-config=alt.json"},
		},
		{
			name:       "unknown flags ignored",
			args:       []string{"-x", "1", "--y=2", "positional"},
			valueFlags: []string{"-c"},
			want:       []string{},
		},
		{
			name:       "value flag at the end is kept alone",
			args:       []string{"-c"},
			valueFlags: []string{"-c"},
			want:       []string{"-c"},
		},
		{
			name:       "dash-prefixed token is not a value",
			args:       []string{"-a", "-demo"},
			valueFlags: []string{"-a"},
			boolFlags:  []string{"-demo"},
			want:       []string{"-a", "-demo"},
		},
		{
			name:       "bool flag does not consume next argument",
			args:       []string{"-demo", "orders", "-i", "5"},
			valueFlags: []string{"-i"},
			boolFlags:  []string{"-demo"},
			want:       []string{"-demo", "-i", "5"},
		},
		{
			name:      "bool flag with explicit value",
			args:      []string{"-demo=false"},
			boolFlags: []string{"-demo"},
			want:      []string{"-demo=false"},
		},
		{
			name:       "repeated flag preserved in order",
			args:       []string{"-c", "one.json", "-c", "two.json"},
			valueFlags: []string{"-c"},
			want:       []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:       "empty args",
			args:       []string{},
			valueFlags: []string{"-c"},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.valueFlags, tt.boolFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with value", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	})

	t.Run("other flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigPath([]string{"-a", "http://api", "-demo"}))
	})

	t.Run("last one wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}
