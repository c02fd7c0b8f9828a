package vfs

import (
	"strconv"
	"strings"
)

// Render returns one "name size" line per entity of the subtree at e,
// visiting each entity before its children and children in insertion order.
func Render(e *Entity) string {
	var sb strings.Builder
	render(&sb, e)
	return sb.String()
}

func render(sb *strings.Builder, e *Entity) {
	sb.WriteString(e.name)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatInt(e.size, 10))
	sb.WriteByte('\n')
	for c := range e.Children() {
		render(sb, c)
	}
}
