package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz1245 := GetLocation("GMT+12:45")
	assert.NotNil(t, tz1245)
	assert.Equal(t, "GMT+12:45", tz1245.String())

	tz945 := GetLocation("gmt+9:45")
	assert.NotNil(t, tz945)
	assert.Equal(t, "GMT+9:45", tz945.String())

	tz_8 := GetLocation("GMT-8")
	assert.NotNil(t, tz_8)
	assert.Equal(t, "GMT-8", tz_8.String())

	ts := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	_, offset := ts.In(GetLocation("GMT-9:45")).Zone()
	assert.Equal(t, -(9*3600 + 45*60), offset)

	assert.Equal(t, time.UTC, GetLocation("UTC"))
	assert.Nil(t, GetLocation(""))
	assert.Nil(t, GetLocation("GMT+20"))
	assert.Nil(t, GetLocation("Nowhere/Unknown"))
}
