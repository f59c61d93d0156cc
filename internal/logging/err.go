package logging

import (
	"context"
	"errors"
	"reflect"
)

// runError несёт поля лога запуска, в котором возникла ошибка.
type runError struct {
	err    error
	fields logCtx
}

func (e *runError) Error() string {
	return e.err.Error()
}

func (e *runError) Unwrap() error {
	return e.err
}

// WrapError прикрепляет к ошибке поля лога из ctx.
// Если ошибка уже обёрнута глубже, её поля сохраняются, а ctx лишь дополняет пустые.
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	fields, _ := ctx.Value(key).(logCtx)
	var inner *runError
	if errors.As(err, &inner) {
		fields = merge(fields, inner.fields)
	}
	return &runError{err: err, fields: fields}
}

// ErrorCtx возвращает ctx, дополненный полями из ошибки.
// Поля ctx, которых нет в ошибке (например, runid), остаются на месте.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *runError
	if !errors.As(err, &e) {
		return ctx
	}
	return update(ctx, func(c *logCtx) { *c = merge(*c, e.fields) })
}

// merge переносит ненулевые поля src поверх dst.
func merge(dst, src logCtx) logCtx {
	d := reflect.ValueOf(&dst).Elem()
	s := reflect.ValueOf(src)
	for i := 0; i < s.NumField(); i++ {
		if f := s.Field(i); !f.IsZero() {
			d.Field(i).Set(f)
		}
	}
	return dst
}
