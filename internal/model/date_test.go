package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2030-12-31")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2030, time.December, 31), d)

	d, err = ParseDate("2030-12-31T23:59:59+09:00")
	require.NoError(t, err)
	assert.Equal(t, "2030-12-31", d.String())

	_, err = ParseDate("31/12/2030")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2030, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-05"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &d))
}
