// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// listconstraints dumps the constraint registry, one row per console
// name, mirroring tools/MatTable.go's dump of the material database.
package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosudoku/constraints"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("Some error has happened: %v\n", err)
		}
	}()

	descriptors := constraints.Registered()

	io.Pforan("registered constraints (%d)\n", len(descriptors))
	io.Pf("%-16s %s\n", "console-name", "display-name")
	io.Pf("%-16s %s\n", "------------", "------------")
	for _, d := range descriptors {
		io.Pfblue("%-16s %s\n", d.ConsoleName, d.DisplayName)
	}
}
