package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithError parses a base 10 int, ignoring surrounding spaces
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}

// ToInt64WithError parses a base 10 int64, ignoring surrounding spaces
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(str), 10, 64)
}

func IsInt64Positive(number int64) bool {
	return number > 0
}
