package renumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDigits(t *testing.T) {
	assert.Equal(t, "track#.mp", StripDigits("track12#.mp3"))
	assert.Equal(t, "#", StripDigits("0123456789#"))
	assert.Equal(t, "no-digits", StripDigits("no-digits"))
	assert.Equal(t, "full１width", StripDigits("full１width"))
}

func TestIntermediate(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "a##0010.txt", opts.Intermediate("a#3.txt", 1))
	assert.Equal(t, "track##0020.mp", opts.Intermediate("track12#.mp3", 2))
	assert.Equal(t, "x##0030y##0030", opts.Intermediate("x#y#", 3))
	assert.Equal(t, "big##10000", opts.Intermediate("big#", 1000))
}

func TestIntermediateOptions(t *testing.T) {
	opts := Options{Marker: '@', Step: 1, Width: 2}
	assert.Equal(t, "song@@07.wav", opts.Intermediate("song@.wav", 7))
	assert.Equal(t, "song@07.wav", opts.Final("song@@07.wav"))
}

func TestFinal(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "a#0010.txt", opts.Final("a##0010.txt"))
	assert.Equal(t, "x#0030y#0030", opts.Final("x##0030y##0030"))
	assert.Equal(t, "plain.txt", opts.Final("plain.txt"))
}

func TestMarkable(t *testing.T) {
	assert.True(t, Markable("blink#.ino", '#'))
	assert.False(t, Markable("blink.ino", '#'))
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Step: 10, Width: 4}.Validate())
	assert.Error(t, Options{Marker: '7', Step: 10, Width: 4}.Validate())
	assert.Error(t, Options{Marker: '/', Step: 10, Width: 4}.Validate())
	assert.Error(t, Options{Marker: '#', Step: 0, Width: 4}.Validate())
	assert.Error(t, Options{Marker: '#', Step: 10, Width: 0}.Validate())
}
