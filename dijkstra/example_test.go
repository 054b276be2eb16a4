package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
)

// ExampleDijkstra_roadTrip picks the cheaper two-leg drive over the direct toll road.
func ExampleDijkstra_roadTrip() {
	g := core.NewGraph(core.WithDirected(false))
	for _, city := range []string{"Kyiv", "Lviv", "Rivne"} {
		g.AddNode(city)
	}
	g.AddEdge("Kyiv", "Lviv", 9)
	g.AddEdge("Kyiv", "Rivne", 3)
	g.AddEdge("Rivne", "Lviv", 4)

	res, err := dijkstra.Dijkstra(g, "Kyiv", "Lviv")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)

	// Output:
	// [Kyiv Rivne Lviv] 7
}
