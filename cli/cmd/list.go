package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/anotherempty/env-sync/envfile"
)

// List prints variables from an env file as KEY=VALUE lines, optionally
// filtered by an expression evaluated once per variable.
type List struct {
	Filter string `help:"Keep only variables matching this expression (fields: key, value, comment, comments)." placeholder:"EXPR" short:"f"`

	Source string `arg:"" default:"-" help:"Source env file or '-' for stdin." name:"source"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, l.Source)
	if err != nil {
		return err
	}

	keep := func(*envfile.Variable) (bool, error) { return true, nil }

	if l.Filter != "" {
		keep, err = compileFilter(l.Filter)
		if err != nil {
			return err
		}
	}

	out := stdout(ctx)

	for _, entry := range doc.Entries {
		v, ok := entry.(*envfile.Variable)
		if !ok {
			continue
		}

		matched, err := keep(v)
		if err != nil {
			return err
		}

		if !matched {
			continue
		}

		_, err = fmt.Fprintf(out, "%s=%s\n", v.Key, v.Value)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// compileFilter builds a predicate from a boolean expr expression.
func compileFilter(src string) (func(*envfile.Variable) (bool, error), error) {
	program, err := expr.Compile(src, expr.Env(filterEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.
			With(slog.String("filter", src)).
			Wrap(err)
	}

	return func(v *envfile.Variable) (bool, error) {
		out, err := expr.Run(program, filterEnv(v))
		if err != nil {
			return false, ErrFilterEval.
				With(slog.String("key", v.Key)).
				Wrap(err)
		}

		matched, ok := out.(bool)

		return matched && ok, nil
	}, nil
}

// filterEnv exposes one variable's fields to a filter expression. A nil
// variable yields the zero environment used for type checking at compile
// time.
func filterEnv(v *envfile.Variable) map[string]any {
	env := map[string]any{
		"key":      "",
		"value":    "",
		"comment":  "",
		"comments": []string{},
	}

	if v == nil {
		return env
	}

	env["key"] = v.Key
	env["value"] = v.Value

	if v.Inline != nil {
		env["comment"] = string(*v.Inline)
	}

	comments := make([]string, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = string(c)
	}

	env["comments"] = comments

	return env
}
