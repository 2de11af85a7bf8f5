package convert

import (
	"github.com/rs/zerolog/log"
)

// File converts the table at input into a feature collection written to output.
// It returns the number of features written. Nothing is written on failure.
func File(input, output string, opts WriteOptions) (int, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return 0, err
	}
	opts.Format = format

	log.Debug().
		Str("input", input).
		Msg("Loading table")

	t, err := LoadFile(input)
	if err != nil {
		return 0, err
	}

	fc, err := Convert(t)
	if err != nil {
		return 0, err
	}

	if err := Write(fc, output, opts); err != nil {
		return 0, err
	}

	log.Info().
		Str("input", input).
		Str("output", output).
		Int("features", len(fc.Features)).
		Str("format", string(opts.Format)).
		Msg("Table converted")

	return len(fc.Features), nil
}
