package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"spreadScope/internal/spread"
)

// Session runs the line-oriented adjustment calculator. It reads factor,
// cap, and imbalance as numeric prompts, echoes the computed adjustments
// with a direction and curve-type classification, and loops until the
// reader is exhausted or the user enters "quit". Invalid numeric input is
// reported and re-prompted; it never reaches the calculator.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// Run executes the prompt loop.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "=== Dynamic Fee Tier Adjustment Calculator ===\n\n")

	for {
		fmt.Fprintf(s.out, "Enter parameters (or 'quit' to exit):\n")

		factor, quit, err := s.readInt("Dynamic spread factor (negative=slow then fast, 0=linear, positive=fast then slow): ")
		if quit {
			return nil
		}
		if err != nil {
			s.reportInvalid()
			continue
		}

		cap, quit, err := s.readFloat("Dynamic spread cap (e.g. 100): ")
		if quit {
			return nil
		}
		if err != nil {
			s.reportInvalid()
			continue
		}

		imbalance, quit, err := s.readFloat("Imbalance ratio (-1.0 to 1.0): ")
		if quit {
			return nil
		}
		if err != nil {
			s.reportInvalid()
			continue
		}

		adj := spread.Compute(factor, cap, imbalance)
		total := abs(adj.Tick) + abs(adj.Fee)

		fmt.Fprintf(s.out, "\n--- Results ---\n")
		fmt.Fprintf(s.out, "Tick index adjustment: %+d basis points\n", adj.Tick)
		fmt.Fprintf(s.out, "Fee tier adjustment: %+d basis points\n", adj.Fee)
		fmt.Fprintf(s.out, "Total effect: %d basis points\n", total)
		fmt.Fprintf(s.out, "Direction: %s\n", spread.DirectionFor(imbalance).Describe())
		fmt.Fprintf(s.out, "Curve type: %s\n", spread.Classify(factor).Describe())
		fmt.Fprintf(s.out, "%s\n", strings.Repeat("-", 50))
	}
}

func (s *Session) readLine(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", true
	}
	line := strings.TrimSpace(s.in.Text())
	if strings.EqualFold(line, "quit") {
		return "", true
	}
	return line, false
}

func (s *Session) readInt(label string) (int, bool, error) {
	line, quit := s.readLine(label)
	if quit {
		return 0, true, nil
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, false, err
	}
	return value, false, nil
}

func (s *Session) readFloat(label string) (float64, bool, error) {
	line, quit := s.readLine(label)
	if quit {
		return 0, true, nil
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, false, err
	}
	return value, false, nil
}

func (s *Session) reportInvalid() {
	fmt.Fprintf(s.out, "Invalid input. Please enter numeric values.\n\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
