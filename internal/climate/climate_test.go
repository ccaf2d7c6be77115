package climate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func f(v float64) *float64 { return &v }

func obs(t *testing.T, station, date string, prcp, tobs *float64) Observation {
	t.Helper()
	d, err := ParseDate(date)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", date, err)
	}
	return Observation{StationID: station, Date: d, Precipitation: prcp, Temperature: tobs}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func dates(in []Observation) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		out = append(out, o.StationID+"@"+o.Date.String())
	}
	return out
}

func TestLatestDate(t *testing.T) {
	t.Run("returns maximum", func(t *testing.T) {
		in := []Observation{
			obs(t, "A", "2017-08-22", nil, nil),
			obs(t, "B", "2017-08-23", nil, nil),
			obs(t, "C", "2010-01-01", nil, nil),
		}
		got, ok := LatestDate(in)
		if !ok {
			t.Fatal("LatestDate ok = false, want true")
		}
		if got.String() != "2017-08-23" {
			t.Errorf("LatestDate = %s, want 2017-08-23", got)
		}
	})

	t.Run("empty is absent", func(t *testing.T) {
		if _, ok := LatestDate(nil); ok {
			t.Error("LatestDate(nil) ok = true, want false")
		}
	})
}

func TestWindow_BoundaryInclusive(t *testing.T) {
	in := []Observation{
		obs(t, "A", "2016-08-22", nil, nil),
		obs(t, "A", "2016-08-23", nil, nil),
		obs(t, "A", "2017-01-01", nil, nil),
		obs(t, "A", "2017-08-23", nil, nil),
	}
	got := Window(in, mustDate(t, "2017-08-23"), TrailingSpanDays)

	want := []string{"A@2016-08-23", "A@2017-01-01", "A@2017-08-23"}
	if diff := cmp.Diff(want, dates(got)); diff != "" {
		t.Errorf("Window mismatch (-want +got):\n%s", diff)
	}
}

func TestWindow_LeapYearSpan(t *testing.T) {
	// 2016-03-01 minus 365 days lands on 2015-03-02 because 2016 is a leap year.
	in := []Observation{
		obs(t, "A", "2015-03-01", nil, nil),
		obs(t, "A", "2015-03-02", nil, nil),
	}
	got := Window(in, mustDate(t, "2016-03-01"), TrailingSpanDays)
	if diff := cmp.Diff([]string{"A@2015-03-02"}, dates(got)); diff != "" {
		t.Errorf("Window mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeFilter(t *testing.T) {
	in := []Observation{
		obs(t, "A", "2017-05-31", nil, nil),
		obs(t, "A", "2017-06-01", nil, nil),
		obs(t, "B", "2017-06-05", nil, nil),
		obs(t, "A", "2017-06-10", nil, nil),
		obs(t, "A", "2017-06-11", nil, nil),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "closed interval inclusive",
			start: "2017-06-01",
			end:   "2017-06-10",
			want:  []string{"A@2017-06-01", "B@2017-06-05", "A@2017-06-10"},
		},
		{
			name:  "open ended",
			start: "2017-06-05",
			want:  []string{"B@2017-06-05", "A@2017-06-10", "A@2017-06-11"},
		},
		{
			name:  "end before start is empty",
			start: "2017-06-10",
			end:   "2017-06-01",
			want:  []string{},
		},
		{
			name:  "single day",
			start: "2017-06-05",
			end:   "2017-06-05",
			want:  []string{"B@2017-06-05"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var end *Date
			if tt.end != "" {
				d := mustDate(t, tt.end)
				end = &d
			}
			got := RangeFilter(in, mustDate(t, tt.start), end)
			if diff := cmp.Diff(tt.want, dates(got)); diff != "" {
				t.Errorf("RangeFilter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForStation(t *testing.T) {
	in := []Observation{
		obs(t, "A", "2017-06-01", nil, nil),
		obs(t, "B", "2017-06-01", nil, nil),
		obs(t, "A", "2017-06-02", nil, nil),
	}
	if diff := cmp.Diff([]string{"A@2017-06-01", "A@2017-06-02"}, dates(ForStation(in, "A"))); diff != "" {
		t.Errorf("ForStation mismatch (-want +got):\n%s", diff)
	}
}

func TestMostActiveStation(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		var in []Observation
		for i := 1; i <= 5; i++ {
			in = append(in, obs(t, "A", "2017-01-0"+string(rune('0'+i)), nil, nil))
		}
		for i := 1; i <= 3; i++ {
			in = append(in, obs(t, "B", "2017-01-0"+string(rune('0'+i)), nil, nil))
		}
		got, ok := MostActiveStation(in)
		if !ok || got != "A" {
			t.Errorf("MostActiveStation = %q, %v; want A, true", got, ok)
		}
	})

	t.Run("tie goes to smallest id regardless of order", func(t *testing.T) {
		orders := [][]Observation{
			{obs(t, "C", "2017-01-01", nil, nil), obs(t, "B", "2017-01-01", nil, nil), obs(t, "B", "2017-01-02", nil, nil), obs(t, "C", "2017-01-02", nil, nil)},
			{obs(t, "B", "2017-01-01", nil, nil), obs(t, "C", "2017-01-01", nil, nil), obs(t, "C", "2017-01-02", nil, nil), obs(t, "B", "2017-01-02", nil, nil)},
		}
		for _, in := range orders {
			got, ok := MostActiveStation(in)
			if !ok || got != "B" {
				t.Errorf("MostActiveStation(%v) = %q, %v; want B, true", dates(in), got, ok)
			}
		}
	})

	t.Run("empty is absent", func(t *testing.T) {
		if got, ok := MostActiveStation(nil); ok {
			t.Errorf("MostActiveStation(nil) = %q, true; want false", got)
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("skips absent values", func(t *testing.T) {
		got, ok := Aggregate([]*float64{f(68), f(70), nil, f(72)})
		if !ok {
			t.Fatal("Aggregate ok = false, want true")
		}
		if diff := cmp.Diff(Stats{Min: 68, Avg: 70, Max: 72}, got); diff != "" {
			t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		got, ok := Aggregate([]*float64{f(-3), f(-1), f(-2)})
		if !ok {
			t.Fatal("Aggregate ok = false, want true")
		}
		if diff := cmp.Diff(Stats{Min: -3, Avg: -2, Max: -1}, got); diff != "" {
			t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero is a value", func(t *testing.T) {
		got, ok := Aggregate([]*float64{nil, f(0)})
		if !ok {
			t.Fatal("Aggregate ok = false, want true")
		}
		if diff := cmp.Diff(Stats{}, got); diff != "" {
			t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, ok := Aggregate(nil); ok {
			t.Error("Aggregate(nil) ok = true, want false")
		}
	})

	t.Run("all absent", func(t *testing.T) {
		if _, ok := Aggregate([]*float64{nil, nil}); ok {
			t.Error("Aggregate(all nil) ok = true, want false")
		}
	})
}

func TestPrecipitationByDate_Collapse(t *testing.T) {
	in := []Observation{
		obs(t, "B", "2017-01-01", f(0.5), nil),
		obs(t, "A", "2017-01-01", f(0.1), nil),
		obs(t, "C", "2017-01-01", nil, nil),
		obs(t, "A", "2017-01-02", f(0.2), nil),
	}
	got := PrecipitationByDate(in)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// C has the greatest id and reported nothing: its absent reading wins.
	if v, ok := got["2017-01-01"]; !ok || v != nil {
		t.Errorf("2017-01-01 = %v, %v; want nil, true", v, ok)
	}
	if v := got["2017-01-02"]; v == nil || *v != 0.2 {
		t.Errorf("2017-01-02 = %v, want 0.2", v)
	}

	// Reversing the input does not change the winner.
	rev := []Observation{in[3], in[2], in[1], in[0]}
	if diff := cmp.Diff(got, PrecipitationByDate(rev)); diff != "" {
		t.Errorf("order dependence (-first +reversed):\n%s", diff)
	}
}

func TestProjections(t *testing.T) {
	in := []Observation{
		obs(t, "A", "2017-01-01", f(0.1), f(70)),
		obs(t, "A", "2017-01-02", nil, nil),
	}
	if diff := cmp.Diff([]*float64{f(70), nil}, Temperatures(in)); diff != "" {
		t.Errorf("Temperatures mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]*float64{f(0.1), nil}, Precipitations(in)); diff != "" {
		t.Errorf("Precipitations mismatch (-want +got):\n%s", diff)
	}
}
