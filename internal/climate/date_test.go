package climate

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseDate_RoundTrip(t *testing.T) {
	tests := []string{
		"2017-08-23",
		"2016-08-23",
		"2000-02-29",
		"1999-12-31",
		"0001-01-01",
		"2024-02-29",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			d, err := ParseDate(in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v, want nil", in, err)
			}
			if got := d.String(); got != in {
				t.Errorf("ParseDate(%q).String() = %q, want %q", in, got, in)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "month out of range", in: "2021-13-01"},
		{name: "day out of range for february", in: "2021-02-30"},
		{name: "not leap year", in: "2023-02-29"},
		{name: "garbage", in: "not-a-date"},
		{name: "empty", in: ""},
		{name: "slashes", in: "2021/01/01"},
		{name: "not zero padded", in: "2021-1-01"},
		{name: "two digit year", in: "21-01-01"},
		{name: "time suffix", in: "2021-01-01T00:00:00"},
		{name: "leading space", in: " 2021-01-01"},
		{name: "day zero", in: "2021-01-00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", tt.in, err)
			}
		})
	}
}

func TestDate_AddDaysCrossesBoundaries(t *testing.T) {
	tests := []struct {
		from string
		days int
		want string
	}{
		{from: "2017-08-23", days: -365, want: "2016-08-23"},
		{from: "2017-03-01", days: -1, want: "2017-02-28"},
		{from: "2016-03-01", days: -1, want: "2016-02-29"},
		{from: "2017-01-01", days: -1, want: "2016-12-31"},
		{from: "2016-12-31", days: 1, want: "2017-01-01"},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.from)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.from, err)
		}
		if got := d.AddDays(tt.days).String(); got != tt.want {
			t.Errorf("%s AddDays(%d) = %s, want %s", tt.from, tt.days, got, tt.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2017, time.August, 23)
	b, err := json.Marshal(map[string]Date{"d": d})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if diff := cmp.Diff(`{"d":"2017-08-23"}`, string(b)); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2017-08-23"`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"2017-02-30"`), &back); err == nil {
		t.Error("Unmarshal(2017-02-30) error = nil, want non-nil")
	}
}

func TestDateError(t *testing.T) {
	var err error = &DateError{Field: "end", Value: "2017-13-01"}
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("errors.Is(%v, ErrInvalidDateFormat) = false, want true", err)
	}
	var de *DateError
	if !errors.As(err, &de) || de.Field != "end" {
		t.Errorf("errors.As = %+v, want Field=end", de)
	}
}
