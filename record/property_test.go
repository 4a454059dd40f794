// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/record"
)

// ids are strictly increasing from the current counter, with no gaps,
// whichever owner each record is created for
func TestIdMonotonicity(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	owners := []*account.Account{newAccount(t), newAccount(t), newAccount(t)}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("ids increase by one across owners", prop.ForAll(
		func(sequence []int) bool {
			expected := env.store.NextId()
			for _, n := range sequence {
				id, err := env.store.Create(env.admin, owners[n], nil, nil, "", "", "")
				if nil != err || id != expected {
					return false
				}
				expected += 1
			}
			return expected == env.store.NextId()
		},
		gen.SliceOf(gen.IntRange(0, len(owners)-1)),
	))

	properties.TestingRun(t)
}

// one operation on a record's fields
type fieldOperation struct {
	Delete bool
	Name   string
	Value  string
}

func genFieldOperation() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.OneConstOf("a", "b", "c", "d", "e"),
		gen.AlphaString(),
	).Map(func(values []interface{}) fieldOperation {
		return fieldOperation{
			Delete: values[0].(bool),
			Name:   values[1].(string),
			Value:  values[2].(string),
		}
	})
}

// after any mix of updates and deletes the stored names are unique,
// match a simple model and keep their first-insertion order
func TestFieldConsistency(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	owner := newAccount(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("names and values stay consistent", prop.ForAll(
		func(operations []fieldOperation) bool {
			id, err := env.store.Create(env.admin, owner, nil, nil, "", "", "")
			if nil != err {
				return false
			}

			// model: ordered names plus a value map
			names := []string{}
			values := map[string]string{}
			for _, op := range operations {
				_, present := values[op.Name]
				if op.Delete {
					err := env.store.DeleteField(env.admin, owner, id, op.Name)
					if present != (nil == err) {
						return false
					}
					if present {
						delete(values, op.Name)
						for i, n := range names {
							if n == op.Name {
								names = append(names[:i], names[i+1:]...)
								break
							}
						}
					}
					continue
				}
				if nil != env.store.UpdateField(env.admin, owner, id, op.Name, op.Value) {
					return false
				}
				if !present {
					names = append(names, op.Name)
				}
				values[op.Name] = op.Value
			}

			c, err := env.store.GetAllFields(owner, id)
			if nil != err || len(c.FieldNames) != len(names) || len(c.FieldValues) != len(names) {
				return false
			}
			seen := map[string]bool{}
			for i, n := range c.FieldNames {
				if seen[n] || n != names[i] || c.FieldValues[i] != values[n] {
					return false
				}
				seen[n] = true
			}
			return true
		},
		gen.SliceOf(genFieldOperation()),
	))

	properties.TestingRun(t)
}

// the container alone: repeated sets leave one entry with the last value
func TestFieldsUpsert(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("last set wins without growing", prop.ForAll(
		func(name string, values []string) bool {
			f := record.NewFields()
			f.Set("other", "x")
			for _, v := range values {
				f.Set(name, v)
			}
			if 0 == len(values) {
				return 1 == f.Len()
			}
			value, ok := f.Get(name)
			return ok && 2 == f.Len() && value == values[len(values)-1]
		},
		gen.Identifier().SuchThat(func(s string) bool { return "other" != s }),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
