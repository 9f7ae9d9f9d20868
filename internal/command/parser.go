// Package command parses the line-oriented allocator commands.
//
// Parsing rejects malformed input (unknown keywords, wrong token counts,
// non-numeric sizes) before anything reaches the region table. Semantic checks
// such as positive sizes stay with the table.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/memsim/region"
)

var (
	// ErrUnknownCommand indicates an unrecognized keyword.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage indicates a wrong number of arguments.
	ErrUsage = errors.New("wrong number of arguments")

	// ErrBadSize indicates a size token that is not an integer.
	ErrBadSize = errors.New("memory size must be a positive integer")
)

// Command is a parsed allocator command.
type Command interface{ isCommand() }

// Request asks for Size bytes for PID using Strategy.
type Request struct {
	PID      string
	Size     region.Address
	Strategy region.Strategy
}

func (Request) isCommand() {}

// Release frees all memory of PID.
type Release struct {
	PID string
}

func (Release) isCommand() {}

// Compact compacts memory.
type Compact struct{}

func (Compact) isCommand() {}

// Status reports every region in address order.
type Status struct{}

func (Status) isCommand() {}

// Stats reports usage and fragmentation totals.
type Stats struct{}

func (Stats) isCommand() {}

// Help lists the commands.
type Help struct{}

func (Help) isCommand() {}

// Exit ends the session.
type Exit struct{}

func (Exit) isCommand() {}

var upper = cases.Upper(language.Und)

// Parse converts one input line into a Command. Blank lines and lines starting
// with CommentPrefix yield (nil, nil). Keywords are case-insensitive; process
// ids are kept verbatim.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], CommentPrefix) {
		return nil, nil
	}

	keyword := upper.String(fields[0])
	args := fields[1:]

	switch keyword {
	case KeywordRequest:
		if len(args) != 3 {
			return nil, usageError(KeywordRequest, UsageRequest)
		}
		size, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadSize, args[1])
		}
		strategy, err := region.ParseStrategy(args[2])
		if err != nil {
			return nil, err
		}
		return Request{PID: args[0], Size: size, Strategy: strategy}, nil

	case KeywordRelease:
		if len(args) != 1 {
			return nil, usageError(KeywordRelease, UsageRelease)
		}
		return Release{PID: args[0]}, nil

	case KeywordCompact:
		return noArgs(Compact{}, keyword, args)
	case KeywordStatus:
		return noArgs(Status{}, keyword, args)
	case KeywordStats:
		return noArgs(Stats{}, keyword, args)
	case KeywordHelp:
		return noArgs(Help{}, keyword, args)
	case KeywordExit:
		return noArgs(Exit{}, keyword, args)
	}

	return nil, fmt.Errorf("%w: %s\n%s", ErrUnknownCommand, keyword, HelpText)
}

func noArgs(c Command, keyword string, args []string) (Command, error) {
	if len(args) != 0 {
		return nil, usageError(keyword, keyword)
	}
	return c, nil
}

func usageError(keyword, usage string) error {
	return fmt.Errorf("%w: %s command format: %s", ErrUsage, keyword, usage)
}
