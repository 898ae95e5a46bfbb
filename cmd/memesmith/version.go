package main

import (
	"flag"
	"fmt"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.r.out(), "%s version %s\n", v.r.program, version)
	return nil
}

func (v *versionCmd) Program() string { return v.r.subProgram("version") }

func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }
