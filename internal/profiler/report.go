package profiler

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func reportPage(schema, table string, rowCount int64, stats []columnStat) Node {
	rows := make([]Node, 0, len(stats))
	for _, stat := range stats {
		nullable := "NO"
		if stat.Column.Nullable {
			nullable = "YES"
		}
		rows = append(rows, Tr(
			Td(Text(stat.Column.Name)),
			Td(Text(stat.Column.DataType)),
			Td(Text(nullable)),
			Td(Text(fmt.Sprintf("%d", stat.DistinctCount))),
		))
	}

	return HTML(
		Head(
			TitleEl(Text(fmt.Sprintf("Profile: %s.%s", schema, table))),
		),
		Body(
			H1(Text(fmt.Sprintf("Table profile: %s.%s", schema, table))),
			P(Text(fmt.Sprintf("Rows: %d", rowCount))),
			P(Text(fmt.Sprintf("Columns: %d", len(stats)))),
			Table(
				THead(Tr(
					Th(Text("Column")),
					Th(Text("Type")),
					Th(Text("Nullable")),
					Th(Text("Distinct values")),
				)),
				TBody(Group(rows)),
			),
		),
	)
}
