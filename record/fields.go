// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// Field - a single named value
type Field struct {
	Name  string
	Value string
}

// Fields - field values kept in the order their names were first set
//
// a name appears at most once; removing a name keeps the relative
// order of the rest
type Fields struct {
	list  []Field
	index map[string]int
}

// NewFields - empty field set
func NewFields() *Fields {
	return &Fields{
		list:  make([]Field, 0, 8),
		index: make(map[string]int),
	}
}

// Len - number of fields
func (f *Fields) Len() int {
	return len(f.list)
}

// Get - value of a field and whether it is present
func (f *Fields) Get(name string) (string, bool) {
	i, ok := f.index[name]
	if !ok {
		return "", false
	}
	return f.list[i].Value, true
}

// Set - overwrite in place, or append a new name at the end
//
// returns true if the name was added
func (f *Fields) Set(name string, value string) bool {
	if i, ok := f.index[name]; ok {
		f.list[i].Value = value
		return false
	}
	f.index[name] = len(f.list)
	f.list = append(f.list, Field{Name: name, Value: value})
	return true
}

// Delete - remove a name, returns false if it was not present
func (f *Fields) Delete(name string) bool {
	i, ok := f.index[name]
	if !ok {
		return false
	}
	delete(f.index, name)
	copy(f.list[i:], f.list[i+1:])
	f.list = f.list[:len(f.list)-1]
	for j := i; j < len(f.list); j += 1 {
		f.index[f.list[j].Name] = j
	}
	return true
}

// Names - field names in order
func (f *Fields) Names() []string {
	names := make([]string, len(f.list))
	for i, e := range f.list {
		names[i] = e.Name
	}
	return names
}

// Values - field values in the same order as Names
func (f *Fields) Values() []string {
	values := make([]string, len(f.list))
	for i, e := range f.list {
		values[i] = e.Value
	}
	return values
}
