package events

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp son milisegundos desde epoch.
// El valor cero es "inválido": fecha ausente o que no se pudo parsear.
type Timestamp struct {
	ms    int64
	valid bool
}

func NewTimestamp(ms int64) Timestamp {
	return Timestamp{ms: ms, valid: true}
}

func TimestampFromTime(t time.Time) Timestamp {
	return NewTimestamp(t.UnixMilli())
}

// ParseTimestamp interpreta un string numérico como milisegundos.
// Igual que parseInt: toma el prefijo entero y descarta el resto.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return Timestamp{}
	}
	ms, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return Timestamp{}
	}
	return NewTimestamp(ms)
}

func (t Timestamp) Millis() (int64, bool) {
	return t.ms, t.valid
}

func (t Timestamp) Valid() bool {
	return t.valid
}

func (t Timestamp) Time() (time.Time, bool) {
	if !t.valid {
		return time.Time{}, false
	}
	return time.UnixMilli(t.ms).UTC(), true
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.ms, 10)), nil
}

// UnmarshalJSON acepta número, string numérico o null
// (los eventos guardados traen dateTime como string).
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = ParseTimestamp(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if ms, err := n.Int64(); err == nil {
		*t = NewTimestamp(ms)
		return nil
	}
	f, err := n.Float64()
	if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
		// Fuera de rango de int64: igual que cualquier valor que no parsea.
		*t = Timestamp{}
		return nil
	}
	*t = NewTimestamp(int64(f))
	return nil
}
