package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	var columns []string
	for _, col := range columnDefs(model) {
		columns = append(columns, fmt.Sprintf("    %s %s", col[0], col[1]))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// columnDefs extracts (name, type) pairs from db/ddl struct tags in
// declaration order.
func columnDefs(model interface{}) [][2]string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res [][2]string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			res = append(res, [2]string{dbTag, ddlTag})
		}
	}
	return res
}

// StorageTypes maps each column of a model to its storage type, the
// first token of the ddl tag (e.g. INTEGER, TEXT). Used by the schema
// manager to detect incompatible pre-existing tables.
func StorageTypes(model interface{}) map[string]string {
	res := make(map[string]string)
	for _, col := range columnDefs(model) {
		res[col[0]] = strings.ToUpper(strings.Fields(col[1])[0])
	}
	return res
}

func columnNames(model interface{}) []string {
	var res []string
	for _, col := range columnDefs(model) {
		res = append(res, col[0])
	}
	return res
}

// Movie DDL methods
func (m Movie) TableDDL() string {
	return generateDDL(m, "movies")
}

func (m Movie) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_movies_uuid ON movies (uuid);",
	}
}

func (m Movie) Columns() []string {
	return columnNames(m)
}

// Rating DDL methods
func (r Rating) TableDDL() string {
	return generateDDL(r, "ratings")
}

func (r Rating) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_ratings_movie_id ON ratings (movie_id);",
	}
}

func (r Rating) Columns() []string {
	return columnNames(r)
}

// Models returns all schema models in dependency order: referenced
// tables come before tables carrying foreign keys to them.
func Models() []DDLGenerator {
	return []DDLGenerator{Movie{}, Rating{}}
}
