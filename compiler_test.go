package assoc_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assoc "gorm.io/assoc"
	"gorm.io/assoc/logger"
)

func TestCompilerToSQL(t *testing.T) {
	var buf bytes.Buffer
	c := assoc.Compiler{
		Resolver: testResolver(),
		Logger:   logger.NewZerologLogger(zerolog.New(&buf), logger.Config{LogLevel: logger.Info}),
	}

	r := assoc.Include(assoc.All[Player](), assoc.Required, assoc.BelongsTo[Player, Team]()).
		Where("`players`.`name` = ?", "jinzhu")

	sql, vars, err := assoc.ToSQL(context.Background(), c, r)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT `players`.*,`teams`.* FROM `players` INNER JOIN `teams` ON `teams`.`id` = `players`.`team_id`"+
			" WHERE `players`.`name` = ?",
		sql)
	assert.Equal(t, []interface{}{"jinzhu"}, vars)

	// the trace interpolates vars for readability
	assert.Contains(t, buf.String(), "WHERE `players`.`name` = 'jinzhu'")
	assert.Contains(t, buf.String(), `"vars":1`)
}

func TestCompilerTracesErrors(t *testing.T) {
	var buf bytes.Buffer
	c := assoc.Compiler{
		Resolver: testResolver(),
		Logger:   logger.NewZerologLogger(zerolog.New(&buf), logger.Config{LogLevel: logger.Error}),
		NowFunc:  func() time.Time { return time.Unix(0, 0) },
	}

	r := assoc.Include(assoc.All[Player](), assoc.Required, assoc.BelongsTo[Player, Contract]())

	_, _, err := assoc.ToSQL(context.Background(), c, r)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "foreign key not found")
}

func TestCompilerDefaultLogger(t *testing.T) {
	c := assoc.Compiler{Resolver: testResolver()}

	sql, _, err := assoc.ToSQL(context.Background(), c, assoc.All[Team]())
	require.NoError(t, err)
	assert.Equal(t, "SELECT `teams`.* FROM `teams`", sql)
}
