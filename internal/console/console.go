// Package console implements a line-oriented command interpreter over a
// string-keyed store.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"evictkv/store"
)

var (
	// ErrUnknownCommand is returned for a verb the console does not support.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command has the wrong number of arguments.
	ErrUsage = errors.New("wrong number of arguments")
	// errQuit ends a session.
	errQuit = errors.New("quit")
)

const nilReply = "(nil)"

const helpText = `SET key value   store value under key
GET key         print the value for key
DEL key         remove key and print its value
SIZE            print the number of entries
KEYS            print keys, most recently used first
HELP            show this help
QUIT            end the session`

// KeyLister is implemented by strategies that can report their recency order.
type KeyLister interface {
	Keys() []string
}

// Console executes commands against a store.
type Console struct {
	store  *store.Store[string, string]
	keys   KeyLister
	logger *zap.Logger
}

// New creates a console for s. keys may be nil, in which case KEYS is
// reported as unsupported.
func New(s *store.Store[string, string], keys KeyLister, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		store:  s,
		keys:   keys,
		logger: logger,
	}
}

// Exec runs a single command line and returns the reply text.
// Blank lines and lines starting with '#' produce an empty reply.
func (c *Console) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", nil
	}
	verb, args := strings.ToUpper(fields[0]), fields[1:]

	switch verb {
	case "SET":
		if len(args) < 2 {
			return "", fmt.Errorf("%w: SET key value", ErrUsage)
		}
		if !c.store.Set(args[0], trailing(line, 2)) {
			return "REJECTED", nil
		}
		return "OK", nil
	case "GET":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: GET key", ErrUsage)
		}
		val, ok := c.store.Get(args[0])
		if !ok {
			return nilReply, nil
		}
		return val, nil
	case "DEL", "DELETE":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: DEL key", ErrUsage)
		}
		val, ok := c.store.Delete(args[0])
		if !ok {
			return nilReply, nil
		}
		return val, nil
	case "SIZE":
		if len(args) != 0 {
			return "", fmt.Errorf("%w: SIZE", ErrUsage)
		}
		return strconv.Itoa(c.store.Size()), nil
	case "KEYS":
		if len(args) != 0 {
			return "", fmt.Errorf("%w: KEYS", ErrUsage)
		}
		if c.keys == nil {
			return "", fmt.Errorf("%w: KEYS is not supported by this strategy", ErrUnknownCommand)
		}
		keys := c.keys.Keys()
		if len(keys) == 0 {
			return "(empty)", nil
		}
		return strings.Join(keys, "\n"), nil
	case "HELP":
		return helpText, nil
	case "QUIT", "EXIT":
		return "", errQuit
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
}

// Run reads commands from r until EOF or QUIT and writes replies to w.
// Command errors are written as "ERR <message>" and do not stop the
// session; only read and write failures are returned.
func (c *Console) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		reply, err := c.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.logger.Debug("command failed", zap.Int("line", lineNo), zap.Error(err))
			reply = "ERR " + err.Error()
		}
		if reply == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, reply); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// trailing returns line with its first n fields removed, keeping the
// spacing inside the remainder.
func trailing(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	}
	return strings.TrimRightFunc(rest, unicode.IsSpace)
}
