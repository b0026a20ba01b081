package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	vttHeader     = "WEBVTT"
	timingArrow   = " --> "
	byteOrderMark = "\ufeff"
)

type parserState int

const (
	stateInHeader parserState = iota
	stateBlankLineAfterHeader
	stateBetweenCues
	stateInCue
)

func (s parserState) String() string {
	switch s {
	case stateInHeader:
		return "in-header"
	case stateBlankLineAfterHeader:
		return "blank-line-after-header"
	case stateBetweenCues:
		return "between-cues"
	case stateInCue:
		return "in-cue"
	default:
		return fmt.Sprintf("parserState(%d)", int(s))
	}
}

// parser holds the state of a single parse call.
type parser struct {
	state   parserState
	cues    []Cue
	textBuf []string
	lineNum int
}

// ParseFile reads and parses the WebVTT file at path.
func ParseFile(path string) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file)
}

// ParseString parses a complete WebVTT document.
func ParseString(text string) ([]Cue, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a WebVTT document from r. Lines may end in "\n", "\r\n" or
// a lone "\r"; a final newline is optional. Line length is not capped.
func Parse(r io.Reader) ([]Cue, error) {
	reader := bufio.NewReader(r)

	p := &parser{state: stateInHeader}
	for {
		chunk, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("error reading VTT file: %w", readErr)
		}

		for _, line := range splitChunk(chunk, readErr == nil) {
			if p.lineNum == 0 {
				line = strings.TrimPrefix(line, byteOrderMark)
			}
			if err := p.step(line); err != nil {
				return nil, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return p.finish()
}

// ParseLines runs the cue parser over already split lines.
func ParseLines(lines []string) ([]Cue, error) {
	p := &parser{state: stateInHeader}
	for _, line := range lines {
		if err := p.step(line); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parser) step(line string) error {
	p.lineNum++

	switch p.state {
	case stateInHeader:
		if line != vttHeader {
			return p.fail(ErrInvalidHeader)
		}
		p.state = stateBlankLineAfterHeader

	case stateBlankLineAfterHeader:
		if line != "" {
			return p.fail(ErrInvalidHeader)
		}
		p.state = stateBetweenCues

	case stateBetweenCues:
		if line == "" {
			return nil
		}
		cue, err := parseTimingLine(line)
		if err != nil {
			return p.fail(err)
		}
		p.cues = append(p.cues, cue)
		p.state = stateInCue

	case stateInCue:
		if line == "" {
			p.flush()
			p.state = stateBetweenCues
			return nil
		}
		p.textBuf = append(p.textBuf, line)

	default:
		panic(fmt.Sprintf("subtitle: unknown parser state %v", p.state))
	}

	return nil
}

// finish flushes text left over when the document ends without a blank line.
// Input may end in any state, including before the header.
func (p *parser) finish() ([]Cue, error) {
	if len(p.textBuf) > 0 {
		p.flush()
	}
	if p.cues == nil {
		p.cues = []Cue{}
	}
	return p.cues, nil
}

// flush assigns the accumulated text to the most recent cue. Text can only
// accumulate in stateInCue, which is entered right after a cue is appended.
func (p *parser) flush() {
	if len(p.cues) == 0 {
		panic("subtitle: cue text flushed with no cue to receive it")
	}
	p.cues[len(p.cues)-1].Text = strings.Join(p.textBuf, "\n")
	p.textBuf = p.textBuf[:0]
}

func (p *parser) fail(err error) error {
	return &ParseError{Line: p.lineNum, Err: err}
}

func parseTimingLine(line string) (Cue, error) {
	tokens := strings.SplitN(line, timingArrow, 2)
	if len(tokens) != 2 {
		return Cue{}, fmt.Errorf("%w: missing %q in %q", ErrInvalidCueTime, strings.TrimSpace(timingArrow), line)
	}

	start, err := ParseDuration(tokens[0])
	if err != nil {
		return Cue{}, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := ParseDuration(tokens[1])
	if err != nil {
		return Cue{}, fmt.Errorf("invalid end timestamp: %w", err)
	}

	return Cue{Start: start, End: end}, nil
}

// splitChunk breaks one ReadString('\n') result into lines, treating a
// lone '\r' as a line break as well. A chunk that did not end in '\n' is
// the tail of the input, where a trailing '\r' ends the last line.
func splitChunk(chunk string, terminated bool) []string {
	if chunk == "" {
		return nil
	}
	if terminated {
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		return strings.Split(chunk, "\r")
	}

	lines := strings.Split(chunk, "\r")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
