package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/mdhtml"
)

const usage = "Usage: mdhtml input.md output.html"

func run(input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := mdhtml.Convert(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// realMain runs the command for args (including the program name) and
// returns the exit status.
func realMain(args []string, stdout io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintln(stdout, usage)
		return 2
	}
	if err := run(args[1], args[2]); err != nil {
		log.Print(err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote %s\n", args[2])
	return 0
}

func main() {
	os.Exit(realMain(os.Args, os.Stdout))
}
