package slot

import (
	"regexp"
	"strconv"
	"strings"

	"estimate-srv/pkg/util"
)

// MinAnswerLength is the byte-length floor for a real answer. Byte length is
// deliberate: any hangul syllable is 3 bytes, so short Korean answers like
// "3주" pass while "no" does not.
const MinAnswerLength = 3

var periodPattern = regexp.MustCompile(`(\d+)\s*(개월|달|주)`)

// budgetUnits in match order: longer/larger tokens first so 만원 wins over 원.
var budgetUnits = []struct {
	multiplier int64
	pattern    *regexp.Regexp
}{
	{1_000_000_000_000, regexp.MustCompile(`([\d,]+)\s*조`)},
	{100_000_000, regexp.MustCompile(`([\d,]+)\s*억`)},
	{10_000, regexp.MustCompile(`([\d,]+)\s*만\s?원`)},
	{1_000, regexp.MustCompile(`([\d,]+)\s*천\s?원`)},
	{1, regexp.MustCompile(`([\d,]+)\s*원`)},
}

// refusalMarkers reject non-answers regardless of length.
var refusalMarkers = []string{
	"몰라", "모르겠", "모름", "글쎄", "아직 안", "안 정했", "미정",
	"없어", "없음", "비밀", "패스",
	"don't know", "dont know", "no idea", "idk", "not sure",
}

// NormalizePeriod extracts the leading digits and a recognized unit (개월, 달,
// 주) and returns "<digits><unit>", canonicalizing 달 to 개월. When no unit is
// found the trimmed input is returned unchanged; callers must re-validate.
func NormalizePeriod(text string) string {
	trimmed := strings.TrimSpace(text)
	m := periodPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}
	unit := m[2]
	if unit == "달" {
		unit = "개월"
	}
	return m[1] + unit
}

// IsValidPeriod reports whether text is a real answer whose normalized form
// carries a recognized period unit.
func IsValidPeriod(text string) bool {
	if !IsValidAnswer(text) {
		return false
	}
	return periodPattern.MatchString(NormalizePeriod(text))
}

// NormalizeBudget converts a budget utterance carrying an explicit currency
// unit (조, 억, 만원, 천원, 원) into a thousands-separated "<amount>원" string.
// Bare numbers without a unit are ambiguous and yield "".
func NormalizeBudget(text string) string {
	for _, u := range budgetUnits {
		m := u.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return ""
		}
		return util.FormatComma(n*u.multiplier) + "원"
	}
	return ""
}

// IsValidAnswer is the universal gate applied before accepting any slot value
// from free text. It rejects too-short answers and refusal phrases.
func IsValidAnswer(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) < MinAnswerLength {
		return false
	}
	for _, marker := range refusalMarkers {
		if strings.Contains(t, marker) {
			return false
		}
	}
	return true
}
