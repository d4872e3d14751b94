package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	var payload struct {
		Birthdate Date `json:"birthdate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"birthdate":"1990-04-12"}`), &payload))
	assert.Equal(t, NewDate(1990, time.April, 12), payload.Birthdate)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthdate":"1990-04-12"}`, string(out))
}

func TestDate_UnmarshalRejectsDateTime(t *testing.T) {
	t.Parallel()
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"1990-04-12T10:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"12/04/1990"`), &d))
}

func TestDate_ZeroIsNull(t *testing.T) {
	t.Parallel()
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value interface{}
		want  Date
	}{
		{"time", time.Date(2001, 2, 3, 15, 4, 5, 0, time.UTC), NewDate(2001, time.February, 3)},
		{"string", "2001-02-03", NewDate(2001, time.February, 3)},
		{"sqlite datetime", "2001-02-03 00:00:00+00:00", NewDate(2001, time.February, 3)},
		{"bytes", []byte("2001-02-03"), NewDate(2001, time.February, 3)},
		{"nil", nil, Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	t.Parallel()
	v, err := NewDate(2001, time.February, 3).Value()
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
