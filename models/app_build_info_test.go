package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_OrNA(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc123").OrNA()

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())

	empty := AppBuildInfo{}.OrNA()
	assert.Equal(t, "N/A", empty.BuildVersion())
}
