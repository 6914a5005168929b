package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{version: "1.2.3", want: true},
		{version: "v0.4.0", want: true},
		{version: "0.5.0-rc.1", want: false},
		{version: "dev", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, Info{Version: tt.version}.IsRelease())
		})
	}
}

func TestInfo_Semver(t *testing.T) {
	v, err := Info{Version: "v1.4.2"}.Semver()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v.String())

	_, err = Info{Version: "dev"}.Semver()
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Full(), info.Platform)
}
