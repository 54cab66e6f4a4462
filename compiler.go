package assoc

import (
	"context"
	"time"

	"gorm.io/assoc/logger"
	"gorm.io/assoc/schema"
)

// Compiler bundles the schema resolver with logging for repeated
// compilations. The zero value is not usable, a Resolver must be set.
type Compiler struct {
	Resolver schema.Resolver
	Logger   logger.Interface
	NowFunc  func() time.Time
}

func (c Compiler) logger() logger.Interface {
	if c.Logger != nil {
		return c.Logger
	}
	return logger.Default
}

func (c Compiler) now() time.Time {
	if c.NowFunc != nil {
		return c.NowFunc()
	}
	return time.Now()
}

// ToSQL compile r with the compiler's resolver, tracing the compilation
func ToSQL[T any](ctx context.Context, c Compiler, r Request[T]) (string, []interface{}, error) {
	begin := c.now()

	stmt := NewStatement(c.Resolver)
	err := r.Build(stmt)
	sql := stmt.SQL.String()

	c.logger().Trace(ctx, begin, func() (string, int64) {
		return logger.ExplainSQL(sql, "'", stmt.Vars...), int64(len(stmt.Vars))
	}, err)

	if err != nil {
		return "", nil, err
	}
	return sql, stmt.Vars, nil
}
