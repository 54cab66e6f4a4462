package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gorm.io/assoc/schema"
)

func TestTableName(t *testing.T) {
	ns := schema.NamingStrategy{}

	assert.Equal(t, "players", ns.TableName("Player"))
	assert.Equal(t, "people", ns.TableName("Person"))
	assert.Equal(t, "player_stats", ns.TableName("PlayerStat"))

	singular := schema.NamingStrategy{SingularTable: true}
	assert.Equal(t, "player", singular.TableName("Player"))

	prefixed := schema.NamingStrategy{TablePrefix: "app_"}
	assert.Equal(t, "app_players", prefixed.TableName("Player"))
}

func TestColumnName(t *testing.T) {
	ns := schema.NamingStrategy{}

	cases := map[string]string{
		"Name":      "name",
		"TeamID":    "team_id",
		"HTTPCode":  "http_code",
		"CreatedAt": "created_at",
		"ID":        "id",
		"Player2ID": "player2_id",
	}

	for column, expected := range cases {
		assert.Equal(t, expected, ns.ColumnName("players", column), column)
	}
}

func TestSchemaName(t *testing.T) {
	ns := schema.NamingStrategy{}

	assert.Equal(t, "Player", ns.SchemaName("players"))
	assert.Equal(t, "TeamId", ns.SchemaName("team_ids"))
	assert.Equal(t, "PlayerStat", ns.SchemaName("player_stats"))

	prefixed := schema.NamingStrategy{TablePrefix: "app_"}
	assert.Equal(t, "Player", prefixed.SchemaName("app_players"))
}
