package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short flag with separate value", args: []string{"-c", "conf.jsonc", "--server", "http://x"}, want: "conf.jsonc"},
		{name: "long flag with equals", args: []string{"--server=http://x", "--config=alt.jsonc"}, want: "alt.jsonc"},
		{name: "long flag with separate value", args: []string{"--config", "a.jsonc"}, want: "a.jsonc"},
		{name: "last occurrence wins", args: []string{"--config=first.jsonc", "-c", "second.jsonc"}, want: "second.jsonc"},
		{name: "unknown flags ignored", args: []string{"--lat", "1", "--long=2", "positional"}, want: ""},
		{name: "no args", args: nil, want: ""},
		{name: "flag without value", args: []string{"-c"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
