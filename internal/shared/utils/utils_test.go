package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		name           string
		district       string
		constituencyNo int
		want           string
	}{
		{"simple district", "Dhaka", 5, "Dhaka5"},
		{"district with space", "Cox's Bazar", 3, "Cox'sBazar3"},
		{"multiple spaces", "Chapai  Nawabganj", 1, "ChapaiNawabganj1"},
		{"tab and space", "Brahman\tBaria", 2, "BrahmanBaria2"},
		{"double digit seat", "Dhaka", 19, "Dhaka19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveUsername(tt.district, tt.constituencyNo))
		})
	}
}

func TestSlugFromUsername(t *testing.T) {
	assert.Equal(t, "dhaka5", SlugFromUsername("Dhaka5"))
	assert.Equal(t, "cox'sbazar3", SlugFromUsername("Cox'sBazar3"))
}
