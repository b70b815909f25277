// Package metrics exposes application metrics collectors.
package metrics

const namespace = "powledger"

func nodeLabel(node string) string {
	if node == "" {
		return "unknown"
	}
	return node
}
