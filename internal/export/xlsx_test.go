package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/export"
	"github.com/KirkDiggler/ba-raid-api/internal/testutils/builders"
)

func testInput() *export.Input {
	return &export.Input{
		Parties: []raid.Party{
			builders.NewPartyBuilder().WithRank(1).WithScore(45_000_000).
				WithSubParty(builders.Member(10005, 5, 3), builders.Assist(10004, 5, 2)).
				WithSubParty(builders.Member(10010, 4, 0)).
				Build(),
			builders.NewPartyBuilder().WithRank(2).WithScore(30_000_000).
				WithSubParty(builders.Member(10005, 5, 3)).
				Build(),
		},
		Names: options.Names{"10005": "호시노", "10004": "히나"},
	}
}

func openWritten(t *testing.T, in *export.Input) *excelize.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, in))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, name string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestWrite_PartiesSheet(t *testing.T) {
	f := openWritten(t, testInput())

	assert.Equal(t, []string{export.PartiesSheet, export.UsageSheet}, f.GetSheetList())

	rows, err := f.GetRows(export.PartiesSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Rank", "Score", "Tier", "Parties", "Party 1", "Party 2"}, rows[0])
	assert.Equal(t, []string{"1", "45000000", "Lunatic", "2", "호시노 5★ 무기3, 히나 5★ 무기2 (A)", "10010 4★"}, rows[1])
	assert.Equal(t, "Insane", cell(t, f, export.PartiesSheet, "C3"))
	assert.Equal(t, "호시노 5★ 무기3", cell(t, f, export.PartiesSheet, "E3"))
}

func TestWrite_UsageSheet(t *testing.T) {
	f := openWritten(t, testInput())

	rows, err := f.GetRows(export.UsageSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Role", "Student ID", "Name", "Grade", "Count", "Total"}, rows[0])
	assert.Equal(t, [][]string{
		{"Member", "10005", "호시노", "5★ 무기3", "2", "2"},
		{"Member", "10010", "10010", "4★", "1", "1"},
		{"Assist", "10004", "히나", "5★ 무기2", "1", "1"},
	}, rows[1:])
}

func TestWrite_CustomThresholds(t *testing.T) {
	in := testInput()
	in.Thresholds = partyfilter.Thresholds{Torment: 10_000_000, Lunatic: 50_000_000}
	f := openWritten(t, in)

	assert.Equal(t, "Torment", cell(t, f, export.PartiesSheet, "C2"))
	assert.Equal(t, "Torment", cell(t, f, export.PartiesSheet, "C3"))
}

func TestWrite_NoParties(t *testing.T) {
	f := openWritten(t, &export.Input{})

	rows, err := f.GetRows(export.PartiesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Rank", "Score", "Tier", "Parties"}, rows[0])
}

func TestWorkbook_InvalidInput(t *testing.T) {
	_, err := export.Workbook(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = export.Workbook(&export.Input{
		Thresholds: partyfilter.Thresholds{Torment: 5, Lunatic: 1},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}
