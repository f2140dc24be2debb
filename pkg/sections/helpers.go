package sections

import "strings"

// maxTechStack caps the tech pills shown per project card. Entries beyond the
// cap are dropped without an indicator.
const maxTechStack = 4

var monthReplacer = strings.NewReplacer(
	"January", "Jan",
	"February", "Feb",
	"March", "Mar",
	"April", "Apr",
	"May", "May",
	"June", "Jun",
	"July", "Jul",
	"August", "Aug",
	"September", "Sep",
	"October", "Oct",
	"November", "Nov",
	"December", "Dec",
)

// AbbreviateMonths replaces every full month name inside the date string with
// its three-letter abbreviation, e.g. "15 January 2022" -> "15 Jan 2022".
func AbbreviateMonths(date string) string {
	return monthReplacer.Replace(date)
}

// SplitMetric splits a metric string on its first space into a leading value
// token and a trailing label phrase, e.g. "50+ Publications" -> ("50+",
// "Publications"). A metric without a space becomes a value with no label.
func SplitMetric(metric string) (value, label string) {
	i := strings.Index(metric, " ")
	if i < 0 {
		return metric, ""
	}
	return metric[:i], metric[i+1:]
}

// NormalizeDegree strips the literal prefixes "Diploma in " and
// "Bachelor's in " and rewrites "Master's in " to "Master's ". The rules
// apply in that fixed order, each only on a prefix match.
func NormalizeDegree(degree string) string {
	degree = strings.TrimPrefix(degree, "Diploma in ")
	degree = strings.TrimPrefix(degree, "Bachelor's in ")
	if rest, ok := strings.CutPrefix(degree, "Master's in "); ok {
		degree = "Master's " + rest
	}
	return degree
}
