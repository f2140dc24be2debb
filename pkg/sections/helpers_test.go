package sections

import "testing"

func TestSplitMetric(t *testing.T) {
	cases := []struct {
		metric string
		value  string
		label  string
	}{
		{metric: "50+ Publications", value: "50+", label: "Publications"},
		{metric: "10 Years Experience", value: "10", label: "Years Experience"},
		{metric: "100%", value: "100%", label: ""},
		{metric: "", value: "", label: ""},
	}

	for _, tc := range cases {
		value, label := SplitMetric(tc.metric)
		if value != tc.value || label != tc.label {
			t.Errorf("SplitMetric(%q) = (%q, %q), want (%q, %q)", tc.metric, value, label, tc.value, tc.label)
		}
	}
}

func TestAbbreviateMonths(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "15 January 2022", want: "15 Jan 2022"},
		{in: "June 2020", want: "Jun 2020"},
		{in: "February - September 2021", want: "Feb - Sep 2021"},
		{in: "March", want: "Mar"},
		{in: "May 2019", want: "May 2019"},
		{in: "no month here", want: "no month here"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := AbbreviateMonths(tc.in); got != tc.want {
			t.Errorf("AbbreviateMonths(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDegree(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Master's in Computer Science", want: "Master's Computer Science"},
		{in: "Diploma in Business", want: "Business"},
		{in: "Bachelor's in Physics", want: "Physics"},
		{in: "PhD in Chemistry", want: "PhD in Chemistry"},
		{in: "Master's of Fine Arts", want: "Master's of Fine Arts"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeDegree(tc.in); got != tc.want {
			t.Errorf("NormalizeDegree(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
