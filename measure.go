package mathml

import (
	"errors"
	"regexp"
	"strconv"
)

var measure = regexp.MustCompile(`^([+-]?[0-9]*(?:\.[0-9]+)?)([a-z%]*)$`)

// Measure parses a measurement value, a number and units, for example: 0.722em, +1.5em, 2pt
func Measure(raw string) (float64, string, error) {
	match := measure.FindStringSubmatch(raw)
	if len(match) == 0 || match[1] == "" || match[1] == "+" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", err
	}

	return number, match[2], nil
}

// MuToEm renders a math-unit distance as an em measurement, 18mu make one em
func MuToEm(mu int) string {
	return strconv.FormatFloat(float64(mu)/18, 'f', 3, 64) + "em"
}
