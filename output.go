// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/runner"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func render(format string, results []runner.Result) (string, error) {
	switch format {
	case formatText:
		return renderText(results), nil
	case formatJSON:
		return renderJSON(results)
	default:
		return "", exc.New(exc.Location{}, exc.CodeInvalidOption, fmt.Sprintf("unknown output format %q", format))
	}
}

func renderText(results []runner.Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.URI)
		if r.Line > 0 {
			fmt.Fprintf(&b, ":%d", r.Line)
		}
		fmt.Fprintf(&b, "\t%v\n", r.Value)
	}
	return b.String()
}

func renderJSON(results []runner.Result) (string, error) {
	records := lo.Map(results, func(r runner.Result, _ int) any {
		record := map[string]any{
			"uri":   r.URI,
			"value": plain(r.Value),
		}
		if r.Line > 0 {
			record["line"] = float64(r.Line)
		}
		return record
	})
	list, err := structpb.NewList(records)
	if err != nil {
		return "", exc.WrapUnknown(exc.Location{}, err)
	}
	b, err := protojson.MarshalOptions{Multiline: true}.Marshal(list)
	if err != nil {
		return "", exc.WrapUnknown(exc.Location{}, err)
	}
	return string(b) + "\n", nil
}

// plain narrows parsed values to the types structpb accepts. Every numeric
// kind becomes a float64 since JSON has a single number type.
func plain(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Slice:
		out := make([]any, 0, rv.Len())
		for x := 0; x < rv.Len(); x = x + 1 {
			out = append(out, plain(rv.Index(x).Interface()))
		}
		return out
	default:
		return v
	}
}
