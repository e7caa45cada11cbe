package sweep

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntAxis converts string axis values into ints.
func ParseIntAxis(inputs []string) ([]int, error) {
	values := make([]int, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", input)
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseFloatAxis converts string axis values into float64s.
func ParseFloatAxis(inputs []string) ([]float64, error) {
	values := make([]float64, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value: %s", input)
		}
		values = append(values, value)
	}
	return values, nil
}
