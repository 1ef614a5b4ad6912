// Package fixture keeps named binstr templates loaded from a YAML or TOML
// document and builds byte slices from them on demand.
//
//	log:
//	  level: debug
//	fixtures:
//	  short: "0x45 0x00"
//	  ipv4:
//	    size: 20
//	    text: |
//	      {4}0x4 {4}5 0x00 {16}%d
//
// ${NAME} and ${NAME:default} in the document are replaced with environment
// values before decoding.
package fixture

import (
	"errors"
	"fmt"
	"sort"

	"github.com/AlexxIT/binstr/internal/logger"
	"github.com/AlexxIT/binstr/pkg/binstr"
	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultSize - buffer size in bytes for fixtures without size
const DefaultSize = 1024

var (
	ErrNotFound = errors.New("fixture: not found")
	ErrSize     = errors.New("fixture: wrong size")
)

type Fixture struct {
	Text string `yaml:"text" toml:"text"`
	Size int    `yaml:"size" toml:"size"`
}

// UnmarshalYAML - fixture can be a plain string with the template text
func (f *Fixture) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Text = node.Value
		return nil
	}
	type plain Fixture
	return node.Decode((*plain)(f))
}

// UnmarshalTOML - same as UnmarshalYAML for TOML documents
func (f *Fixture) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		f.Text = v
	case map[string]any:
		for key, value := range v {
			switch key {
			case "text":
				s, ok := value.(string)
				if !ok {
					return fmt.Errorf("fixture: text must be a string, got %T", value)
				}
				f.Text = s
			case "size":
				i, ok := value.(int64)
				if !ok {
					return fmt.Errorf("fixture: size must be an integer, got %T", value)
				}
				f.Size = int(i)
			default:
				return fmt.Errorf("fixture: unknown key %q", key)
			}
		}
	default:
		return fmt.Errorf("fixture: unsupported value %T", v)
	}
	return nil
}

type config struct {
	Log      map[string]string  `yaml:"log" toml:"log"`
	Fixtures map[string]Fixture `yaml:"fixtures" toml:"fixtures"`
}

// Catalog - read only after load, safe for concurrent Build calls
type Catalog struct {
	fixtures map[string]Fixture
	parser   *binstr.Parser
	log      zerolog.Logger
}

func LoadYAML(data []byte) (*Catalog, error) {
	var cfg config
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("fixture: yaml: %w", err)
	}
	return newCatalog(&cfg)
}

func LoadTOML(data []byte) (*Catalog, error) {
	var cfg config
	if _, err := toml.Decode(expandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("fixture: toml: %w", err)
	}
	return newCatalog(&cfg)
}

func newCatalog(cfg *config) (*Catalog, error) {
	l := logger.New(cfg.Log)

	c := &Catalog{
		fixtures: make(map[string]Fixture, len(cfg.Fixtures)),
		parser:   &binstr.Parser{Log: l.GetLogger("binstr")},
		log:      l.GetLogger("fixture"),
	}

	for name, f := range cfg.Fixtures {
		if f.Size < 0 {
			return nil, fmt.Errorf("%w: %s: %d", ErrSize, name, f.Size)
		}
		if f.Size == 0 {
			f.Size = DefaultSize
		}
		c.fixtures[name] = f
	}

	c.log.Debug().Int("count", len(c.fixtures)).Msg("[fixture] load")

	return c, nil
}

func (c *Catalog) Logger() zerolog.Logger {
	return c.log
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.fixtures))
	for name := range c.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Get(name string) (Fixture, bool) {
	f, ok := c.fixtures[name]
	return f, ok
}

// Build packs fixture into a new buffer and returns used bytes and the number
// of bits. With args the fixture text is a fmt format.
func (c *Catalog) Build(name string, args ...any) ([]byte, int, error) {
	f, ok := c.fixtures[name]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	buf := make([]byte, f.Size)

	var n int
	var err error
	if len(args) > 0 {
		n, err = c.parser.Parsef(buf, f.Text, args...)
	} else {
		n, err = c.parser.Parse(f.Text, buf)
	}
	if err != nil {
		c.log.Warn().Err(err).Str("name", name).Msg("[fixture] build")
		return nil, 0, fmt.Errorf("fixture: %s: %w", name, err)
	}

	c.log.Trace().Str("name", name).Int("bits", n).Msg("[fixture] build")

	return buf[:(n+7)/8], n, nil
}
