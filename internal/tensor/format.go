package tensor

import (
	"fmt"
	"strings"
)

// Format renders the view's elements as nested brackets, one row per line.
func Format[T any](v *View[T]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", v)

	if v.Rank() == 0 {
		fmt.Fprintf(&sb, "%v\n", v.At(Index{}))
		return sb.String()
	}

	var idx Index
	formatDim(&sb, v, 0, &idx)
	return sb.String()
}

func formatDim[T any](sb *strings.Builder, v *View[T], dim int, idx *Index) {
	indent := strings.Repeat(" ", dim)
	if dim == v.Rank()-1 {
		sb.WriteString(indent + "[")
		for i := 0; i < v.Size(dim); i++ {
			idx[dim] = i
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%v", v.At(*idx))
		}
		sb.WriteString("]\n")
		return
	}

	sb.WriteString(indent + "[\n")
	for i := 0; i < v.Size(dim); i++ {
		idx[dim] = i
		formatDim(sb, v, dim+1, idx)
	}
	sb.WriteString(indent + "]\n")
}
