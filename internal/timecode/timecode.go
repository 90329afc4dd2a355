// Package timecode converts between seconds and the HH:MM:SS clock form
// ffmpeg accepts for seek positions.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Timecode is a whole-second clock position.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
}

// FromSeconds floors secs into hours, minutes, and seconds. Negative and
// non-finite values yield the zero Timecode.
func FromSeconds(secs float64) Timecode {
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs <= 0 {
		return Timecode{}
	}
	return Timecode{
		Hours:   int(math.Floor(secs / 3600)),
		Minutes: int(math.Floor(math.Mod(secs, 3600) / 60)),
		Seconds: int(math.Floor(math.Mod(secs, 60))),
	}
}

// FromHHMMSS builds a Timecode from its components as given.
func FromHHMMSS(hh, mm, ss int) Timecode {
	return Timecode{Hours: hh, Minutes: mm, Seconds: ss}
}

// TotalSeconds returns the position in seconds.
func (t Timecode) TotalSeconds() float64 {
	return float64(t.Hours)*3600 + float64(t.Minutes)*60 + float64(t.Seconds)
}

// String renders the position as zero-padded HH:MM:SS.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Parse accepts "HH:MM:SS", "MM:SS", or a plain number of seconds with an
// optional "s", "ms", or "us" unit as ffmpeg does. Fractional seconds are
// floored.
func Parse(value string) (Timecode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Timecode{}, errors.New("timecode: empty value")
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) == 1 {
		number, scale := splitUnit(trimmed)
		secs, err := strconv.ParseFloat(number, 64)
		if err != nil || secs < 0 || math.IsInf(secs, 0) || math.IsNaN(secs) {
			return Timecode{}, fmt.Errorf("timecode: invalid seconds %q", value)
		}
		return FromSeconds(secs * scale), nil
	}
	if len(parts) > 3 {
		return Timecode{}, fmt.Errorf("timecode: too many fields in %q", value)
	}

	// the last field may carry a fraction
	last, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || last < 0 || last >= 60 {
		return Timecode{}, fmt.Errorf("timecode: invalid seconds field in %q", value)
	}
	fields := make([]int, 0, 2)
	for _, part := range parts[:len(parts)-1] {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Timecode{}, fmt.Errorf("timecode: invalid field %q in %q", part, value)
		}
		fields = append(fields, n)
	}

	var tc Timecode
	if len(fields) == 2 {
		if fields[1] >= 60 {
			return Timecode{}, fmt.Errorf("timecode: minutes out of range in %q", value)
		}
		tc = FromHHMMSS(fields[0], fields[1], int(last))
	} else {
		tc = FromHHMMSS(0, fields[0], int(last))
	}
	return FromSeconds(tc.TotalSeconds()), nil
}

func splitUnit(value string) (string, float64) {
	switch {
	case strings.HasSuffix(value, "ms"):
		return strings.TrimSuffix(value, "ms"), 1e-3
	case strings.HasSuffix(value, "us"):
		return strings.TrimSuffix(value, "us"), 1e-6
	case strings.HasSuffix(value, "s"):
		return strings.TrimSuffix(value, "s"), 1
	default:
		return value, 1
	}
}
