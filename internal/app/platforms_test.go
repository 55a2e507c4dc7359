package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlatforms(t *testing.T) {
	service, _ := newTestService(t, "osx-x86_64", nil)

	result := service.ListPlatforms(t.Context())
	require.NotNil(t, result.Detected)
	assert.Equal(t, "mac", result.Detected.Classifier)
	assert.Empty(t, result.DetectError)
	assert.Len(t, result.Platforms, 5)

	service.Host = fixedHost("aix-ppc_64")
	result = service.ListPlatforms(t.Context())
	assert.Nil(t, result.Detected)
	assert.Contains(t, result.DetectError, "aix-ppc_64")
}
