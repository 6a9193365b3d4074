package inputs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jakebark/jsoncheck/internal/config"
	"github.com/spf13/pflag"
)

type UserInput struct {
	Target    string
	KeepGoing bool
	Color     bool
}

func isDirectory(target string) bool {
	info, err := os.Stat(target)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ParseFlags returns parsed CLI flags and arguments, exiting on bad input
func ParseFlags() UserInput {
	userInput, err := ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return userInput
}

func ParseArgs(args []string) (UserInput, error) {
	var keepGoing, color bool

	flags := pflag.NewFlagSet("jsoncheck", pflag.ContinueOnError)
	flags.BoolVarP(&keepGoing, "keep-going", "k", false, "record unreadable files instead of stopping")
	flags.BoolVar(&color, "color", false, "colorize the report")
	if err := flags.Parse(args); err != nil {
		return UserInput{}, err
	}

	if flags.NArg() > 1 {
		return UserInput{}, fmt.Errorf("expected at most one directory, got %d arguments", flags.NArg())
	}
	target := config.DefaultTarget
	if flags.NArg() == 1 {
		target = flags.Arg(0)
	}
	if !isDirectory(target) {
		return UserInput{}, fmt.Errorf("%s is not a directory", target)
	}

	return UserInput{
		Target:    target,
		KeepGoing: keepGoing,
		Color:     color,
	}, nil
}
