package elementary

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strconv"
	"time"
)

var (
	// ErrUsage reports missing or surplus positional arguments.
	ErrUsage = errors.New("expected arguments: rule [initial]")
	// ErrRuleRange reports a rule that is not a number between 0 and 255.
	ErrRuleRange = errors.New("rule must be a number between 0 and 255")
	// ErrTooNarrow reports a terminal that cannot fit MinWidth cells.
	ErrTooNarrow = errors.New("terminal too narrow for a random configuration")
	// ErrDelay reports a negative delay.
	ErrDelay = errors.New("delay must not be negative")
	// ErrGenerations reports a generation count that is not a non-negative
	// number.
	ErrGenerations = errors.New("generations must be a non-negative number")
	// ErrUnknownKey reports a map key ParseMap does not recognize.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// GenerationCount is an optional number of generations. The zero value is
// unset, which Build resolves to the terminal height.
type GenerationCount struct {
	N     int
	Given bool
}

// Generations returns a count explicitly set to n.
func Generations(n int) GenerationCount { return GenerationCount{N: n, Given: true} }

// String implements flag.Value. An unset count prints as empty so flag
// usage shows no default.
func (g *GenerationCount) String() string {
	if g == nil || !g.Given {
		return ""
	}
	return strconv.Itoa(g.N)
}

// Set implements flag.Value. Negative numbers are accepted here and rejected
// by Build.
func (g *GenerationCount) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: got %q", ErrGenerations, s)
	}
	*g = Generations(n)
	return nil
}

// Config holds the user-facing parameters of a run before they are resolved
// against the terminal geometry.
type Config struct {
	Rule int
	// Initial is the literal starting configuration. Empty means random.
	Initial string
	Edges   EdgeHandling
	// Generations is the number of generations to show. Unset means the
	// terminal height.
	Generations GenerationCount
	DelayMS     int
	// Seed feeds the random starting configuration. Zero picks a seed.
	Seed  int64
	Plain bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 30, Edges: Wrap}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c, _ := ParseMap(cfg)
	return c
}

// ParseMap is FromMap that also reports every key it ignored, either
// unknown or carrying an invalid value. The returned Config holds the
// defaults overridden by the valid values.
func ParseMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var errs []error
	for _, k := range keys {
		if err := c.setKey(k, cfg[k]); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", k, cfg[k], err))
		}
	}
	return c, errors.Join(errs...)
}

func (c *Config) setKey(key, v string) error {
	switch key {
	case "rule":
		parsed, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return ErrRuleRange
		}
		c.Rule = int(parsed)
	case "initial":
		if _, err := Parse(v); err != nil {
			return err
		}
		c.Initial = v
	case "edges":
		parsed, err := ParseEdgeHandling(v)
		if err != nil {
			return err
		}
		c.Edges = parsed
	case "generations":
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return ErrGenerations
		}
		c.Generations = Generations(parsed)
	case "delay":
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return ErrDelay
		}
		c.DelayMS = parsed
	case "seed":
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = parsed
	default:
		return ErrUnknownKey
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. The rule and the
// initial configuration are positional, see ParseArgs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&c.Edges, "edges", "how the two edges are handled: copy, crop or wrap")
	fs.Var(&c.Edges, "e", "shorthand for -edges")
	fs.Var(&c.Generations, "generations", "number of generations to run for (default terminal height)")
	fs.Var(&c.Generations, "g", "shorthand for -generations")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "milliseconds to wait before the next generation")
	fs.IntVar(&c.DelayMS, "d", c.DelayMS, "shorthand for -delay")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial configuration (0 picks one)")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print lines to stdout instead of taking over the terminal")
}

// ParseArgs reads the positional arguments: a rule and an optional initial
// configuration.
func (c *Config) ParseArgs(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: got %d arguments", ErrUsage, len(args))
	}
	rule, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("%w: got %q", ErrRuleRange, args[0])
	}
	c.Rule = int(rule)
	if len(args) == 2 {
		if _, err := Parse(args[1]); err != nil {
			return err
		}
		c.Initial = args[1]
	}
	return nil
}

// Build resolves the configuration against a terminal of width by height
// columns and rows. A random start uses width/2 cells since every cell is
// two columns wide.
func (c Config) Build(width, height int, src BoolSource) (Settings, Cells, error) {
	if c.Rule < 0 || c.Rule > 255 {
		return Settings{}, nil, fmt.Errorf("%w: got %d", ErrRuleRange, c.Rule)
	}
	if c.DelayMS < 0 {
		return Settings{}, nil, fmt.Errorf("%w: got %d", ErrDelay, c.DelayMS)
	}
	if c.Generations.Given && c.Generations.N < 0 {
		return Settings{}, nil, fmt.Errorf("%w: got %d", ErrGenerations, c.Generations.N)
	}
	s := Settings{
		Rule:        Rule(c.Rule),
		Edges:       c.Edges,
		Generations: c.Generations.N,
		Delay:       time.Duration(c.DelayMS) * time.Millisecond,
	}
	if !c.Generations.Given {
		s.Generations = max(height, 0)
	}

	var initial Cells
	if c.Initial != "" {
		var err error
		if initial, err = Parse(c.Initial); err != nil {
			return Settings{}, nil, err
		}
	} else {
		w := width / 2
		if w < MinWidth {
			return Settings{}, nil, fmt.Errorf("%w: %d columns", ErrTooNarrow, width)
		}
		initial = NewRandom(w, src)
	}
	return s, initial, nil
}
