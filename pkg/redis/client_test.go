package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Shutdown calls Close unconditionally, so it has to be safe when Redis
// was never configured and the singleton stayed nil.
func TestCloseWithoutClient(t *testing.T) {
	assert.Nil(t, Client())
	assert.NoError(t, Close())
}

func TestInitializeWithoutURL(t *testing.T) {
	err := Initialize(Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")
	assert.Nil(t, Client())
}
