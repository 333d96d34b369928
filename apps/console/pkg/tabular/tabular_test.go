package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"admin.townguide.app/apps/console/pkg/tabular"
)

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, '\t', tabular.DetectDelimiter("a\tb\tc\td,e\n1\t2\t3\t4"))
	assert.Equal(t, ',', tabular.DetectDelimiter("a,b\tc,d\n"))
	assert.Equal(t, ',', tabular.DetectDelimiter("a\tb,c\td,e"))
	assert.Equal(t, ',', tabular.DetectDelimiter("single"))
}

func TestParseComma(t *testing.T) {
	rows := tabular.Parse("name,slug\nHarbor Market, harbor-market \n", 0)

	assert.Equal(t, [][]string{
		{"name", "slug"},
		{"Harbor Market", "harbor-market"},
	}, rows)
}

func TestParseTab(t *testing.T) {
	rows := tabular.Parse("name\tslug\tsort\nPier Walk\tpier-walk\t2", 0)

	assert.Equal(t, [][]string{
		{"name", "slug", "sort"},
		{"Pier Walk", "pier-walk", "2"},
	}, rows)
}

func TestParseQuotedCells(t *testing.T) {
	text := "name,notes\n\"Smith, Jones & Co\",\"He said \"\"hi\"\"\"\n"
	rows := tabular.Parse(text, 0)

	assert.Equal(t, "Smith, Jones & Co", rows[1][0])
	assert.Equal(t, `He said "hi"`, rows[1][1])
}

func TestParseNewlineInsideQuotes(t *testing.T) {
	text := "name,notes\nMarket,\"line one\nline two\"\n"
	rows := tabular.Parse(text, 0)

	assert.Len(t, rows, 2)
	assert.Equal(t, "line one\nline two", rows[1][1])
}

func TestParseDropsBlankLines(t *testing.T) {
	rows := tabular.Parse("a,b\n\n1,2\n , \n3,4\n", 0)

	assert.Equal(t, [][]string{
		{"a", "b"},
		{"1", "2"},
		{"3", "4"},
	}, rows)
}

func TestParseStripsByteOrderMark(t *testing.T) {
	rows := tabular.Parse("\uFEFFname,slug\nMarket,market\n", 0)

	assert.Equal(t, "name", rows[0][0])
}

func TestParseCRLF(t *testing.T) {
	rows := tabular.Parse("a,b\r\n1,2\r\n", 0)

	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}

func TestSerializeQuotesOnlyWhenNeeded(t *testing.T) {
	out := tabular.Serialize(
		[][]string{{"plain", "a,b", `say "hi"`, "two\nlines"}},
		[]string{"w", "x", "y", "z"},
	)

	assert.Equal(t, "w,x,y,z\nplain,\"a,b\",\"say \"\"hi\"\"\",\"two\nlines\"\n", out)
}

func TestSerializeMissingCellsAreEmpty(t *testing.T) {
	out := tabular.Serialize([][]string{{"only"}}, []string{"a", "b"})

	assert.Equal(t, "a,b\nonly,\n", out)
}

func TestRoundTrip(t *testing.T) {
	headers := []string{"name", "slug", "sort_order"}
	rows := [][]string{
		{"Harbor Market", "harbor-market", "1"},
		{"Old Town Hall", "old-town-hall", "2"},
	}

	serialized := tabular.Serialize(rows, headers)
	parsed := tabular.Parse(serialized, 0)

	assert.Equal(t, serialized, tabular.Serialize(parsed[1:], headers))
}
