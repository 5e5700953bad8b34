// SPDX-License-Identifier: MIT
package infection_test

import (
	"fmt"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/infection"
	"github.com/katalvlaran/coachgraph/user"
)

func ExampleTotal() {
	g := core.NewGraph()
	for _, id := range []string{"coach", "amy", "ben", "stranger"} {
		_ = g.Register(user.New(id, id))
	}
	_ = g.Link("coach", "amy")
	_ = g.Link("ben", "amy")

	res, _ := infection.Total(g, "amy", "v2")
	fmt.Println(res.Infected)

	_, set, _ := g.Version("stranger")
	fmt.Println("stranger versioned:", set)

	// Output:
	// [amy coach ben]
	// stranger versioned: false
}

func ExampleLimited() {
	g := core.NewGraph()
	for _, id := range []string{"lead", "a", "b", "c", "solo"} {
		_ = g.Register(user.New(id, id))
	}
	_ = g.Link("lead", "a")
	_ = g.Link("a", "b")
	_ = g.Link("a", "c")

	res, _ := infection.Limited(g, "beta", 3)
	fmt.Println(res.Selected, res.Infected)

	// Output:
	// a [a b c]
}
