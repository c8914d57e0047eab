package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/encryption"
)

type genkeyCmd struct{}

func (*genkeyCmd) Name() string     { return "genkey" }
func (*genkeyCmd) Synopsis() string { return "print a new MEMO_KEY" }
func (*genkeyCmd) Usage() string {
	return `wealthctl genkey

  Prints a random fernet key for MEMO_KEY.
`
}

func (*genkeyCmd) SetFlags(*flag.FlagSet) {}

func (*genkeyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := encryption.GenerateKey()
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(Output, key)
	return subcommands.ExitSuccess
}
