package schema

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tabler tables with a fixed name implement this to override the
// NamingStrategy derived name
type Tabler interface {
	TableName() string
}

// Namer namer interface
type Namer interface {
	TableName(table string) string
	ColumnName(table, column string) string
	SchemaName(table string) string
}

// NamingStrategy tables, columns naming strategy
type NamingStrategy struct {
	TablePrefix   string
	SingularTable bool
}

// TableName convert string to table name
func (ns NamingStrategy) TableName(str string) string {
	if ns.SingularTable {
		return ns.TablePrefix + toDBName(str)
	}
	return ns.TablePrefix + inflection.Plural(toDBName(str))
}

// ColumnName convert string to column name
func (ns NamingStrategy) ColumnName(table, column string) string {
	return toDBName(column)
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// SchemaName convert table name to schema (Go struct) name
func (ns NamingStrategy) SchemaName(table string) string {
	table = strings.TrimPrefix(table, ns.TablePrefix)

	if !ns.SingularTable {
		table = inflection.Singular(table)
	}

	return strings.ReplaceAll(titleCaser.String(strings.ReplaceAll(table, "_", " ")), " ", "")
}

func toDBName(name string) string {
	if name == "" {
		return ""
	}

	var (
		buf   strings.Builder
		runes = []rune(name)
	)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			// break words on lower->upper and upper->lower boundaries, so
			// TeamID becomes team_id rather than team_i_d
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				buf.WriteByte('_')
			}
			buf.WriteRune(unicode.ToLower(r))
		} else {
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
