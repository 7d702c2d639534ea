package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "avatars/freelancer/12/abc", ObjectKey("freelancer", 12, "abc", "application/x-unknown-type"))

	key := ObjectKey("client", 3, "abc", "image/png")
	assert.Equal(t, "avatars/client/3/abc.png", key)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/avatars/avatars/client/3/abc.png",
		ObjectURL("https://cdn.example.com/", "avatars", "avatars/client/3/abc.png"))
}
