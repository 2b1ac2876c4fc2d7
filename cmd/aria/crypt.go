package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"aria-go/pkg/aria"
)

var cryptCommand = &cli.Command{
	Name:      "crypt",
	Usage:     "encrypt or decrypt a single hex-encoded block",
	ArgsUsage: "<32 hex digits>",
	Description: `Applies ARIA to one 128-bit block given as 32 hex digits and prints
the result. The key length (16, 24 or 32 bytes) selects the ARIA
variant.`,
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "key", Aliases: []string{"K"}, Usage: "cipher key as hex", Required: true},
		&cli.BoolFlag{Name: "decrypt", Aliases: []string{"d"}, Usage: "decrypt instead of encrypt"},
	},
	Action: cryptCmd,
}

func cryptCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one hex block argument", 1)
	}

	key, err := hex.DecodeString(c.String("key"))
	if err != nil {
		return fmt.Errorf("bad key hex: %w", err)
	}
	block, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return fmt.Errorf("bad block hex: %w", err)
	}
	if len(block) != aria.BlockSize {
		return fmt.Errorf("block must be %d bytes, got %d", aria.BlockSize, len(block))
	}

	cipher, err := aria.NewCipher(key)
	if err != nil {
		return err
	}

	out := make([]byte, aria.BlockSize)
	if c.Bool("decrypt") {
		cipher.Decrypt(out, block)
	} else {
		cipher.Encrypt(out, block)
	}
	fmt.Println(hex.EncodeToString(out))
	return nil
}
