package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "brand model year",
			parts: []string{"BMW", "X5", "2021"},
			want:  "bmw-x5-2021",
		},
		{
			name:  "spaces and punctuation collapse to hyphens",
			parts: []string{"Mercedes-Benz", "GLE 350 d", "2022"},
			want:  "mercedes-benz-gle-350-d-2022",
		},
		{
			name:  "non ascii characters are dropped",
			parts: []string{"Škoda", "Octavia", "2020"},
			want:  "koda-octavia-2020",
		},
		{
			name:  "leading and trailing separators are trimmed",
			parts: []string{" Audi ", "A6!", "2019"},
			want:  "audi-a6-2019",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, buildSlug(tc.parts...))
		})
	}
}
