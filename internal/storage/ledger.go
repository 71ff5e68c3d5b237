package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const DefaultScoresPath = "scores.txt"

// Ledger is the append-only history of final scores, one integer per line.
type Ledger struct {
	Path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{Path: path}
}

func (l *Ledger) Append(score int) error {
	file, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: open ledger: %w", ErrIO, err)
	}

	if _, err := fmt.Fprintf(file, "%d\n", score); err != nil {
		file.Close()
		return fmt.Errorf("%w: append score: %w", ErrIO, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close ledger: %w", ErrIO, err)
	}
	return nil
}

// Scores returns every recorded score, highest first. Lines that are not
// integers are logged and skipped. A missing ledger is an empty history.
func (l *Ledger) Scores() ([]int, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("%w: open ledger: %w", ErrIO, err)
	}
	defer file.Close()

	scores := make([]int, 0)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		score, err := strconv.Atoi(line)
		if err != nil {
			log.WithFields(log.Fields{
				"path": l.Path,
				"line": lineNo,
			}).WithError(fmt.Errorf("%w: %q", ErrMalformedScore, line)).Warn("Ledger: skipping entry")
			continue
		}
		scores = append(scores, score)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read ledger: %w", ErrIO, err)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	return scores, nil
}

// Top returns at most n scores, highest first.
func (l *Ledger) Top(n int) ([]int, error) {
	scores, err := l.Scores()
	if err != nil {
		return nil, err
	}
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores, nil
}
