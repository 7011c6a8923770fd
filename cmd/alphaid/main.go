// Command alphaid encodes unsigned integers as short IDs and decodes them back.
//
// Usage:
//
//	alphaid encode 1350997667
//	alphaid decode 90F7qb
//	alphaid --min-len 5 encode 7 8 9
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/komuw/alphaid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "alphaid",
		Usage: "convert unsigned integers to short youtube-like IDs and back",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "ordered set of distinct symbols used as digits",
				Value: alphaid.DefaultAlphabet,
			},
			&cli.IntFlag{
				Name:  "min-len",
				Usage: "minimum length of encoded IDs",
				Value: 1,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "encode one or more non-negative integers",
				ArgsUsage: "<number>...",
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "decode one or more IDs",
				ArgsUsage: "<id>...",
				Action:    decodeCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("alphaid failed")
		os.Exit(1)
	}
}

func newCodec(c *cli.Context) (*alphaid.Codec[uint64], error) {
	return alphaid.New[uint64](alphaid.Options{
		Alphabet: c.String("alphabet"),
		MinLen:   c.Int("min-len"),
	})
}

func encodeCommand(c *cli.Context) error {
	codec, err := newCodec(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.NArg() == 0 {
		return cli.Exit("encode: no numbers given", 2)
	}

	for _, arg := range c.Args().Slice() {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("encode: %q is not a non-negative integer", arg), 2)
		}
		fmt.Println(codec.EncodeToString(v))
	}
	return nil
}

func decodeCommand(c *cli.Context) error {
	codec, err := newCodec(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.NArg() == 0 {
		return cli.Exit("decode: no IDs given", 2)
	}

	for _, arg := range c.Args().Slice() {
		v, err := codec.DecodeString(arg)
		if err != nil {
			return cli.Exit(fmt.Sprintf("decode: %s", err), 2)
		}
		fmt.Println(v)
	}
	return nil
}
