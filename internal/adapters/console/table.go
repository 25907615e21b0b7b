// Package console imprime un reporte de equipo como tablas para la terminal.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// PrintReport escribe encabezado, tabla de mapas y últimas series. now se usa para las fechas relativas.
func PrintReport(w io.Writer, rep domain.Report, now time.Time) {
	fmt.Fprintf(w, "\n%s (%s)  |  %s → %s\n", rep.TeamName, rep.TeamID, day(rep.Period.From), day(rep.Period.To))
	fmt.Fprintf(w, "Roster: %s\n", strings.Join(rep.Players, ", "))
	fmt.Fprintf(w, "Series: %d  |  Maps: %d  |  found matches=%d series=%d team=%d\n\n",
		rep.TotalSeries, rep.TotalMatches,
		rep.Diagnostics.AllMatchesFound, rep.Diagnostics.SeriesFound, rep.Diagnostics.TeamSeriesFound)

	printMapTable(w, rep.MapStatistics)
	fmt.Fprintln(w)
	printSeriesTable(w, rep.RecentSeries, now)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func printMapTable(w io.Writer, stats []domain.MapStat) {
	table := newTable(w)
	table.Header("MAP", "PLAYED", "W", "L", "WIN%")
	for _, st := range stats {
		table.Append(
			st.Map,
			strconv.Itoa(st.TotalMatches),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.WinRate)+"%",
		)
	}
	table.Render()
}

func printSeriesTable(w io.Writer, series []domain.SeriesView, now time.Time) {
	table := newTable(w)
	table.Header("WHEN", "SERIES", "MAPS", "RESULT", "ROSTER")
	for _, sr := range series {
		maps := make([]string, 0, len(sr.Maps))
		for _, m := range sr.Maps {
			cell := m.Map + " " + m.Result
			if m.Score != "" {
				cell += " (" + m.Score + ")"
			}
			maps = append(maps, cell)
		}
		table.Append(
			relative(sr.Date, now),
			sr.ID,
			strings.Join(maps, ", "),
			sr.SeriesResult,
			strconv.Itoa(sr.TotalOurPlayers),
		)
	}
	table.Render()
}

func relative(iso string, now time.Time) string {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return iso
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func day(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}
