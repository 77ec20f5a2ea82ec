// Package export writes filtered parties and their usage statistics to an
// xlsx workbook
package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

// Sheet names
const (
	PartiesSheet = "Parties"
	UsageSheet   = "Usage"
)

// scoreNumFmt is the builtin "#,##0" format
const scoreNumFmt = 3

// Input is everything a workbook is built from
type Input struct {
	Parties    []raid.Party
	Names      options.Names
	Thresholds partyfilter.Thresholds
}

// Validate fills default thresholds
func (in *Input) Validate() error {
	if in.Thresholds == (partyfilter.Thresholds{}) {
		in.Thresholds = partyfilter.DefaultThresholds()
	}
	return in.Thresholds.Validate()
}

// Workbook builds the Parties and Usage sheets
func Workbook(in *Input) (*excelize.File, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := in.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid export input")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", PartiesSheet); err != nil {
		_ = f.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to name parties sheet")
	}
	if _, err := f.NewSheet(UsageSheet); err != nil {
		_ = f.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to add usage sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create header style")
	}
	scoreStyle, err := f.NewStyle(&excelize.Style{NumFmt: scoreNumFmt})
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create score style")
	}

	w := &writer{f: f, names: in.Names, headerStyle: headerStyle, scoreStyle: scoreStyle}
	if err := w.parties(in.Parties, in.Thresholds); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := w.usage(stats.Summarize(in.Parties, in.Thresholds)); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}

// Write builds the workbook and streams it to out
func Write(out io.Writer, in *Input) error {
	f, err := Workbook(in)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to write workbook")
	}
	return nil
}

type writer struct {
	f           *excelize.File
	names       options.Names
	headerStyle int
	scoreStyle  int
}

func (w *writer) header(sheet string, titles []string) error {
	for i, title := range titles {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "invalid header cell")
		}
		if err := w.f.SetCellValue(sheet, cell, title); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "failed to write header")
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(titles), 1)
	if err := w.f.SetCellStyle(sheet, "A1", last, w.headerStyle); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to style header")
	}
	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (w *writer) row(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "invalid row")
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to write row")
	}
	return nil
}

// parties writes one row per party: rank, score, tier, sub-party count and
// one column per sub-party listing its students
func (w *writer) parties(parties []raid.Party, t partyfilter.Thresholds) error {
	maxSubParties := 0
	for _, p := range parties {
		maxSubParties = max(maxSubParties, p.PartyCount())
	}

	titles := []string{"Rank", "Score", "Tier", "Parties"}
	for i := 1; i <= maxSubParties; i++ {
		titles = append(titles, fmt.Sprintf("Party %d", i))
	}
	if err := w.header(PartiesSheet, titles); err != nil {
		return err
	}

	for i, p := range parties {
		values := []any{p.Rank, p.Score, t.TierOf(p.Score).Label(), p.PartyCount()}
		for _, sp := range p.SubParties {
			values = append(values, w.subPartyLabel(sp))
		}
		if err := w.row(PartiesSheet, i+2, values); err != nil {
			return err
		}
	}

	if len(parties) > 0 {
		end := fmt.Sprintf("B%d", len(parties)+1)
		if err := w.f.SetCellStyle(PartiesSheet, "B2", end, w.scoreStyle); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "failed to style scores")
		}
	}
	return nil
}

// usage writes one row per student and grade, members first, each group by
// descending total
func (w *writer) usage(sum stats.Summary) error {
	titles := []string{"Role", "Student ID", "Name", "Grade", "Count", "Total"}
	if err := w.header(UsageSheet, titles); err != nil {
		return err
	}

	row := 2
	groups := []struct {
		role  string
		usage []stats.Usage
	}{
		{role: "Member", usage: sum.TopMembers(0)},
		{role: "Assist", usage: sum.TopAssists(0)},
	}
	for _, g := range groups {
		for _, u := range g.usage {
			keys := make([]int, 0, len(u.ByGrade))
			for key := range u.ByGrade {
				keys = append(keys, key)
			}
			sort.Ints(keys)

			for _, key := range keys {
				values := []any{
					g.role,
					u.StudentID,
					w.name(u.StudentID),
					options.GradeLabel(raid.GradeFromKey(key)),
					u.ByGrade[key],
					u.Total,
				}
				if err := w.row(UsageSheet, row, values); err != nil {
					return err
				}
				row++
			}
		}
	}
	return nil
}

func (w *writer) name(studentID int) string {
	if name := w.names[strconv.Itoa(studentID)]; name != "" {
		return name
	}
	return strconv.Itoa(studentID)
}

// subPartyLabel renders filled slots as "name grade", assists marked with (A)
func (w *writer) subPartyLabel(sp raid.SubParty) string {
	labels := make([]string, 0, len(sp.Slots))
	for _, s := range sp.Slots {
		if s.IsEmpty() {
			continue
		}
		label := w.name(s.StudentID) + " " + options.GradeLabel(s.Grade())
		if s.Assist {
			label += " (A)"
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
