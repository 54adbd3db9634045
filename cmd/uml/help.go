package main

import (
	"fmt"

	"oss.terrastruct.com/uml/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %s [--watch=false] [--actions=actions.json] model.json [model.layout.json]

%[1]s sizes every element of model.json to fit its labels, routes its relationships and
writes the positioned diagram to model.layout.json.
Use - to have %[1]s read from stdin or write to stdout.

Flags:
%s
`, ms.Name, ms.Opts.Help())
}
