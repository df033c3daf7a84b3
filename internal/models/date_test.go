package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalJSON(t *testing.T) {
	d := Date{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-04-01")))
	assert.Equal(t, "2024-04-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateValue(t *testing.T) {
	d := Date{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
