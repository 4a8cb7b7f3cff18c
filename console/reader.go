package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

const (
	// Bytes kept from a name line; anything past it is dropped.
	maxPlayerName = 19
	// "scissors" is the longest valid choice.
	maxChoiceInput = 8
	// Leading blanks plus the bestOf token; the rest of the line is dropped.
	maxBestOfInput = 4096

	DefaultMaxAttempts = 5
)

// Reader prompts on out and reads answers line by line from in.
type Reader struct {
	in          *bufio.Reader
	out         io.Writer
	pacer       Pacer
	lower       cases.Caser
	maxAttempts int
}

func NewReader(in io.Reader, out io.Writer, pacer Pacer, maxAttempts int) *Reader {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Reader{
		in:          bufio.NewReader(in),
		out:         out,
		pacer:       pacer,
		lower:       cases.Lower(language.Und),
		maxAttempts: maxAttempts,
	}
}

func (r *Reader) prompt(ctx context.Context, text string) error {
	if err := r.pacer.Pause(ctx, r.pacer.Short); err != nil {
		return err
	}
	fmt.Fprint(r.out, "\n")
	if err := r.pacer.Pause(ctx, r.pacer.Short); err != nil {
		return err
	}
	fmt.Fprint(r.out, text)
	return r.pacer.Pause(ctx, r.pacer.Short)
}

// readLine consumes a whole line, newline included, and returns at most
// limit bytes of it. Only limit bytes plus a line ending are ever held; the
// rest of an overlong line is discarded as it is read. io.EOF is returned
// only when nothing was read.
func (r *Reader) readLine(limit int) (string, error) {
	var (
		kept []byte
		read bool
	)
	keepMax := limit + len("\r\n")
loop:
	for {
		chunk, err := r.in.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if room := keepMax - len(kept); room > 0 {
			kept = append(kept, chunk[:min(len(chunk), room)]...)
		}

		switch {
		case err == nil:
			break loop
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				return "", io.EOF
			}
			break loop
		default:
			return "", err
		}
	}

	line := strings.TrimSuffix(string(kept), "\n")
	line = strings.TrimSuffix(line, "\r")
	return truncate(line, limit), nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ReadPlayerName accepts any text, including an empty line.
func (r *Reader) ReadPlayerName(ctx context.Context) (string, error) {
	if err := r.prompt(ctx, "Player name: "); err != nil {
		return "", err
	}
	name, err := r.readLine(maxPlayerName)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return name, r.pacer.Pause(ctx, r.pacer.Short)
}

// ReadBestOf reads one integer token and validates it as a series length.
// Blank lines before the token are skipped; the rest of the token's line is
// always discarded.
func (r *Reader) ReadBestOf(ctx context.Context) (int, error) {
	if err := r.prompt(ctx, "Best of: "); err != nil {
		return 0, err
	}

	var line string
	for {
		raw, err := r.readLine(maxBestOfInput)
		if errors.Is(err, io.EOF) {
			return 0, &gameModel.InputError{Reason: gameModel.NotAnInteger}
		}
		if err != nil {
			return 0, err
		}
		if line = strings.TrimLeft(raw, " \t\v\f\r"); line != "" {
			break
		}
	}
	if err := r.pacer.Pause(ctx, r.pacer.Short); err != nil {
		return 0, err
	}

	bestOf, ok := parseInt(line)
	if !ok {
		return 0, &gameModel.InputError{Reason: gameModel.NotAnInteger, Input: line}
	}
	if _, err := gameModel.NewSeriesConfig("", bestOf); err != nil {
		return 0, &gameModel.InputError{Reason: gameModel.InvalidBestOf, Input: strconv.Itoa(bestOf)}
	}
	return bestOf, nil
}

// parseInt reads the longest integer prefix of s: optional sign, then hex
// after 0x, octal after a leading 0, decimal otherwise.
func parseInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	if i < len(s) && s[i] == '0' {
		base = 8
		if i+2 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && digitValue(s[i+2]) < 16 {
			base = 16
			i += 2
		}
	}

	j := i
	for j < len(s) && digitValue(s[j]) < base {
		j++
	}
	if j == i {
		return 0, false
	}

	v, err := strconv.ParseInt(s[i:j], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return int(v), true
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

// ReadPlayerMove prompts until a move word is entered, giving up with
// gameModel.ErrExhaustedRetries after the configured number of attempts.
func (r *Reader) ReadPlayerMove(ctx context.Context) (gameModel.Move, error) {
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if err := r.prompt(ctx, "Stone, Paper or Scissors: "); err != nil {
			return 0, err
		}
		choice, err := r.readLine(maxChoiceInput)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		fmt.Fprint(r.out, "\n")
		if err := r.pacer.Pause(ctx, r.pacer.Short); err != nil {
			return 0, err
		}

		if move, ok := gameModel.ParseMove(r.lower.String(choice)); ok {
			return move, nil
		}
		fmt.Fprint(r.out, "Invalid Choice...\n")
		if err := r.pacer.Pause(ctx, r.pacer.Short); err != nil {
			return 0, err
		}
	}
	return 0, gameModel.ErrExhaustedRetries
}
