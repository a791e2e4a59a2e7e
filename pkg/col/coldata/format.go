// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"
)

// formatColumn renders a column for diagnostics: type, cardinality,
// memory footprint and up to the first few values.
func formatColumn(c Column) string {
	const preview = 8
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s column of %d rows (%s) [",
		c.LogicalType(), c.Len(), humanize.IBytes(uint64(c.MemoryFootprint())))
	n := c.Len()
	for i := 0; i < n && i < preview; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		d, err := c.TryGet(i)
		if err != nil {
			sb.WriteString("?")
			continue
		}
		sb.WriteString(d.String())
	}
	if n > preview {
		sb.WriteString(", ...")
	}
	sb.WriteString("]")
	return sb.String()
}
