package archive

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteTable lists the entries as a table, with how long ago each was saved.
func WriteTable(w io.Writer, entries []*Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Source", "Hash", "Saved"})
	table.SetAutoWrapText(false)
	for _, e := range entries {
		table.Append([]string{e.Name, e.Source, shortHash(e.Hash), humanize.Time(e.Created)})
	}
	table.Render()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
