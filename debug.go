package grove

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// logger receives grove's warnings. Defaults to the logrus standard logger.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger routes grove's warnings to l. A nil l restores the logrus
// standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// warnInconsistent reports a structural inconsistency found while repairing
// the tree. The operation carries on; the event is never fatal.
func warnInconsistent(n *Node, msg string, fields logrus.Fields) {
	logger.WithFields(fields).WithFields(logrus.Fields{
		"node":   n.Name,
		"nodeID": n.ID,
		"event":  "inconsistency",
	}).Warn("grove: " + msg)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("grove debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	n.LoopTraverseAncestors(func(*Node) { depth++ })
	if depth > debugMaxTreeDepth {
		logger.WithFields(logrus.Fields{
			"node":  n.Name,
			"depth": depth,
		}).Warnf("grove: tree depth exceeds %d", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.WithFields(logrus.Fields{
			"node":     n.Name,
			"children": len(n.children),
		}).Warnf("grove: child count exceeds %d", debugMaxChildCount)
	}
}
