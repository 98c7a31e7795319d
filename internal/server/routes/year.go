package routes

import (
	"fmt"
	"strconv"
)

func parseYear(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if year < 0 || year > 9999 {
		return 0, fmt.Errorf("year %d out of range", year)
	}
	return year, nil
}
