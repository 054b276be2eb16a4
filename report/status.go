package report

import "github.com/katalvlaran/graphwalk/session"

var statusText = map[session.Kind]string{
	session.KindEmptyLabel:        "Enter a node label.",
	session.KindDuplicateNode:     "Node already exists.",
	session.KindInsufficientNodes: "Need at least 2 nodes to add an edge.",
	session.KindInvalidEndpoint:   "Select valid nodes for the edge.",
	session.KindSelfLoop:          "Self-loops are ignored here.",
	session.KindDuplicateEdge:     "Same edge with same weight already exists.",
	session.KindEdgeIndex:         "No edge at that index.",
	session.KindEmptyGraph:        "Add nodes first.",
	session.KindUnknownStartNode:  "Choose a valid start node.",
	session.KindNoPath:            "No path found.",
	session.KindRequiresDirected:  "Topological Sort only works for Directed Acyclic Graphs!",
	session.KindCyclicGraph:       "Graph has cycle. No topo order.",
}

// Status returns the user-facing status line for err and its level.
// A nil err yields an empty info message.
func Status(err error) (string, Level) {
	if err == nil {
		return "", LevelInfo
	}
	if msg, ok := statusText[session.KindOf(err)]; ok {
		return msg, LevelError
	}

	return err.Error(), LevelError
}

// StatusLine styles msg for its level.
func StatusLine(msg string, lvl Level) string {
	return StyleForLevel(lvl).Render(msg)
}
