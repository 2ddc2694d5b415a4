package mathml

// String flattens the character content of a tree
func String(node *Node) (out string) {
	out = node.Text
	for _, child := range node.Children {
		out += String(child)
	}

	return
}

func textContent(nodes []*Node) (out string) {
	for _, node := range nodes {
		out += String(node)
	}

	return
}
