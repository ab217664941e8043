package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{-1, "0 B"},
		{0, "0.00 B"},
		{999, "999.00 B"},
		{1000, "1.00 KB"},
		{1500, "1.50 KB"},
		{123456789, "123.46 MB"},
		{1000 * 1000 * 1000, "1.00 GB"},
		{1000 * 1000 * 1000 * 1000, "1.00 TB"},
		{1000 * 1000 * 1000 * 1000 * 1000, "1.00 PB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Size(tc.in), "Size(%d)", tc.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, float64(0), Percent(10, 0))
	assert.InDelta(t, 50.0, Percent(5, 10), 0.001)
	assert.InDelta(t, 12.5, Percent(125, 1000), 0.001)
}

func TestAgeDays(t *testing.T) {
	assert.Equal(t, 0, AgeDays(time.Now()))
	assert.Equal(t, 3, AgeDays(time.Now().Add(-3*24*time.Hour-time.Hour)))
	assert.Equal(t, 0, AgeDays(time.Now().Add(time.Hour)))
}
