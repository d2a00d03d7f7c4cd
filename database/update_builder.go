package database

import (
	"fmt"
	"strings"
)

// UpdateBuilder accumulates SET assignments for a partial UPDATE safely.
// Columns come from the package constants, values are parameterized.
type UpdateBuilder struct {
	assignments []string
	args        []interface{}
	argCount    int
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		assignments: []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

func (ub *UpdateBuilder) Set(column string, value interface{}) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = $%d", column, ub.argCount))
	ub.args = append(ub.args, value)
	ub.argCount++
}

// SetRaw adds an assignment with no parameter, e.g. "updated_at = NOW()".
func (ub *UpdateBuilder) SetRaw(assignment string) {
	ub.assignments = append(ub.assignments, assignment)
}

func (ub *UpdateBuilder) Empty() bool {
	return len(ub.assignments) == 0
}

func (ub *UpdateBuilder) SetClause() string {
	return "SET " + strings.Join(ub.assignments, ", ")
}

func (ub *UpdateBuilder) Args() []interface{} {
	return ub.args
}

func (ub *UpdateBuilder) NextArgNum() int {
	return ub.argCount
}
