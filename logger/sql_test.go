package logger_test

import (
	"fmt"
	"testing"

	"github.com/jinzhu/now"
	"github.com/stretchr/testify/assert"

	"gorm.io/assoc/logger"
)

func TestExplainSQL(t *testing.T) {
	tt := now.MustParse("2020-02-23 11:43:33.631")

	results := []struct {
		SQL    string
		Vars   []interface{}
		Result string
	}{
		{
			SQL:    "SELECT * FROM `users` WHERE `id` = ?",
			Vars:   []interface{}{1},
			Result: "SELECT * FROM `users` WHERE `id` = 1",
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `name` = ? AND `active` = ?",
			Vars:   []interface{}{"jinzhu", true},
			Result: "SELECT * FROM `users` WHERE `name` = 'jinzhu' AND `active` = true",
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `name` = ?",
			Vars:   []interface{}{"jinzhu's"},
			Result: `SELECT * FROM ` + "`users`" + ` WHERE ` + "`name`" + ` = 'jinzhu\'s'`,
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `created_at` > ?",
			Vars:   []interface{}{tt},
			Result: "SELECT * FROM `users` WHERE `created_at` > '2020-02-23 11:43:33'",
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `deleted_at` IS ? AND `score` > ?",
			Vars:   []interface{}{nil, 1.25},
			Result: "SELECT * FROM `users` WHERE `deleted_at` IS NULL AND `score` > 1.250000",
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `token` = ?",
			Vars:   []interface{}{[]byte("secret")},
			Result: "SELECT * FROM `users` WHERE `token` = 'secret'",
		},
		{
			SQL:    "SELECT * FROM `users` WHERE `token` = ?",
			Vars:   []interface{}{[]byte{0x01, 0x02}},
			Result: "SELECT * FROM `users` WHERE `token` = '<binary>'",
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			assert.Equal(t, result.Result, logger.ExplainSQL(result.SQL, "'", result.Vars...))
		})
	}
}
