package clause_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	assoc "gorm.io/assoc"
	"gorm.io/assoc/clause"
)

func checkBuildClauses(t *testing.T, clauses []clause.Interface, result string, vars []interface{}) {
	t.Helper()

	stmt := assoc.NewStatement(nil)
	for _, c := range clauses {
		stmt.AddClause(c)
	}
	stmt.Build("SELECT", "FROM", "WHERE", "ORDER BY")

	assert.Equal(t, result, stmt.SQL.String())
	if len(vars) == 0 {
		assert.Empty(t, stmt.Vars)
	} else {
		assert.Equal(t, vars, stmt.Vars)
	}
}

func TestSelect(t *testing.T) {
	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}}},
			"SELECT * FROM `users`", nil,
		},
		{
			[]clause.Interface{
				clause.Select{Columns: []clause.Column{{Table: "users", Name: "id"}}},
				clause.From{Tables: []clause.Table{{Name: "users"}}},
			},
			"SELECT `users`.`id` FROM `users`", nil,
		},
		{
			// a later Select replaces an earlier one
			[]clause.Interface{
				clause.Select{Columns: []clause.Column{{Name: "id"}}},
				clause.Select{Columns: []clause.Column{{Name: "name"}}},
				clause.From{Tables: []clause.Table{{Name: "users"}}},
			},
			"SELECT `name` FROM `users`", nil,
		},
		{
			// a later empty Select resets to all columns
			[]clause.Interface{
				clause.Select{Columns: []clause.Column{{Name: "id"}}},
				clause.Select{},
				clause.From{Tables: []clause.Table{{Name: "users"}}},
			},
			"SELECT * FROM `users`", nil,
		},
		{
			[]clause.Interface{
				clause.Select{Columns: []clause.Column{{Table: "users", Name: "*"}, {Table: "teams", Name: "name", Alias: "team_name"}}},
				clause.From{Tables: []clause.Table{{Name: "users"}}},
			},
			"SELECT `users`.*,`teams`.`name` AS `team_name` FROM `users`", nil,
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}

func TestWhere(t *testing.T) {
	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.Where{Exprs: []clause.Expression{clause.Eq{Column: clause.Column{Name: "id"}, Value: 1}}},
			},
			"SELECT * FROM `users` WHERE `id` = ?", []interface{}{1},
		},
		{
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.Where{Exprs: []clause.Expression{
					clause.Eq{Column: clause.Column{Name: "score"}, Value: 100},
					clause.Neq{Column: clause.Column{Name: "name"}, Value: nil},
				}},
			},
			"SELECT * FROM `users` WHERE `score` = ? AND `name` IS NOT NULL", []interface{}{100},
		},
		{
			// where clauses accumulate across AddClause calls
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "age > ?", Vars: []interface{}{18}}}},
				clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "age < ?", Vars: []interface{}{60}}}},
			},
			"SELECT * FROM `users` WHERE age > ? AND age < ?", []interface{}{18, 60},
		},
		{
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.Where{Exprs: []clause.Expression{clause.Or(
					clause.Eq{Column: clause.Column{Name: "role"}, Value: "admin"},
					clause.Eq{Column: clause.Column{Name: "role"}, Value: "owner"},
				)}},
			},
			"SELECT * FROM `users` WHERE (`role` = ? OR `role` = ?)", []interface{}{"admin", "owner"},
		},
		{
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.Where{Exprs: []clause.Expression{clause.And(
					clause.Eq{Column: clause.Column{Name: "age"}, Value: 18},
					clause.Eq{Column: clause.Column{Name: "name"}, Value: "jinzhu"},
				)}},
			},
			"SELECT * FROM `users` WHERE (`age` = ? AND `name` = ?)", []interface{}{18, "jinzhu"},
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}

func TestJoin(t *testing.T) {
	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{
				clause.Select{}, clause.From{
					Tables: []clause.Table{{Name: "users"}},
					Joins: []clause.Join{{
						Type:  clause.InnerJoin,
						Table: clause.Table{Name: "articles"},
						ON: clause.Where{Exprs: []clause.Expression{clause.Eq{
							Column: clause.Column{Table: "articles", Name: "user_id"},
							Value:  clause.Column{Table: "users", Name: "id"},
						}}},
					}},
				},
			},
			"SELECT * FROM `users` INNER JOIN `articles` ON `articles`.`user_id` = `users`.`id`", nil,
		},
		{
			[]clause.Interface{
				clause.Select{}, clause.From{
					Tables: []clause.Table{{Name: "users"}},
					Joins: []clause.Join{{
						Type:  clause.LeftJoin,
						Table: clause.Table{Name: "users", Alias: "pets"},
						Using: []string{"id"},
					}},
				},
			},
			"SELECT * FROM `users` LEFT JOIN `users` `pets` USING (`id`)", nil,
		},
		{
			[]clause.Interface{
				clause.Select{}, clause.From{
					Tables: []clause.Table{{Name: "users"}},
					Joins: []clause.Join{{
						Expression: clause.Expr{SQL: "CROSS JOIN numbers"},
					}},
				},
			},
			"SELECT * FROM `users` CROSS JOIN numbers", nil,
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}

func TestOrderBy(t *testing.T) {
	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.OrderBy{Columns: []clause.OrderByColumn{
					{Column: clause.Column{Table: "users", Name: "created_at"}, Desc: true},
				}},
			},
			"SELECT * FROM `users` ORDER BY `users`.`created_at` DESC", nil,
		},
		{
			// later orderings append
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "name"}}}},
				clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}}},
			},
			"SELECT * FROM `users` ORDER BY `name`,`id` DESC", nil,
		},
		{
			// Reorder drops everything before it
			[]clause.Interface{
				clause.Select{}, clause.From{Tables: []clause.Table{{Name: "users"}}},
				clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "name"}}}},
				clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Reorder: true}}},
			},
			"SELECT * FROM `users` ORDER BY `id`", nil,
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}

func TestExpr(t *testing.T) {
	stmt := assoc.NewStatement(nil)
	clause.Expr{SQL: "id IN ?", Vars: []interface{}{[]interface{}{1, 2, 3}}}.Build(stmt)

	assert.Equal(t, "id IN (?,?,?)", stmt.SQL.String())
	assert.Equal(t, []interface{}{1, 2, 3}, stmt.Vars)
}
